// Package wire defines the JSON document exchanged between the user listing
// service and its clients:
//
//	{ "users": [ { "id": "...", "firstName": "...", "lastName": "...",
//	               "company": { "name": "...", "title": "..." },
//	               "address": { "country": "..." } } ] }
//
// Both the HTTP and the gRPC transport carry this same document; the gRPC
// transport wraps it in a google.protobuf.Struct (see ToStruct/FromStruct).
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports a payload that cannot be turned into a user list.
var ErrMalformed = errors.New("malformed users payload")

type Company struct {
	Name  string `json:"name" jsonschema:"required,minLength=1"`
	Title string `json:"title" jsonschema:"required,minLength=1"`
}

type Address struct {
	Country string `json:"country" jsonschema:"required,minLength=1"`
}

type User struct {
	ID        string  `json:"id" jsonschema:"required"`
	FirstName string  `json:"firstName" jsonschema:"required,minLength=1"`
	LastName  string  `json:"lastName" jsonschema:"required,minLength=1"`
	Company   Company `json:"company" jsonschema:"required"`
	Address   Address `json:"address" jsonschema:"required"`
}

// UsersResponse is the body of a successful list-users call.
type UsersResponse struct {
	Users []User `json:"users" jsonschema:"required"`
}

// EncodeUsers renders users as a UsersResponse document. A nil slice is
// encoded as an empty array.
func EncodeUsers(users []User) ([]byte, error) {
	if users == nil {
		users = []User{}
	}
	return json.Marshal(UsersResponse{Users: users})
}

// record accepts the identifier under "id" (string or number) or "_id"
// (string or {"$oid": "..."}).
type record struct {
	ID        json.RawMessage `json:"id"`
	MongoID   json.RawMessage `json:"_id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Company   Company         `json:"company"`
	Address   Address         `json:"address"`
}

// DecodeUsers parses a users payload. It accepts the {"users": [...]} document
// and, for compatibility with services that return the collection directly,
// a bare JSON array. Every record must carry a non-empty identifier and
// identifiers must be unique; any violation yields an error wrapping
// ErrMalformed.
func DecodeUsers(data []byte) ([]User, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformed)
	}

	var records []record
	if data[0] == '[' {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	} else {
		var doc struct {
			Users *[]record `json:"users"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if doc.Users == nil {
			return nil, fmt.Errorf("%w: missing users collection", ErrMalformed)
		}
		records = *doc.Users
	}

	users := make([]User, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, r := range records {
		id, err := r.identifier()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i, err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformed, id)
		}
		seen[id] = struct{}{}

		users = append(users, User{
			ID:        id,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Company:   r.Company,
			Address:   r.Address,
		})
	}

	return users, nil
}

func (r record) identifier() (string, error) {
	for _, raw := range []json.RawMessage{r.ID, r.MongoID} {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		if id != "" {
			return id, nil
		}
	}
	return "", errors.New("missing id")
}

func parseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	case '{':
		var oid struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(raw, &oid); err != nil {
			return "", err
		}
		return strings.TrimSpace(oid.OID), nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", fmt.Errorf("unsupported id %s", raw)
		}
		return n.String(), nil
	}
}
