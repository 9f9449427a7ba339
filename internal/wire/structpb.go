package wire

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts users into the Struct form of a UsersResponse.
func ToStruct(users []User) (*structpb.Struct, error) {
	data, err := EncodeUsers(users)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	s, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, fmt.Errorf("struct conversion: %w", err)
	}
	return s, nil
}

// FromStruct decodes a Struct produced by ToStruct, applying the same rules
// as DecodeUsers.
func FromStruct(s *structpb.Struct) ([]User, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil struct", ErrMalformed)
	}

	data, err := protojson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return DecodeUsers(data)
}
