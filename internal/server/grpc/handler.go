package grpc

import (
	"context"

	"github.com/dmitrijs2005/userlist/internal/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) ListUsers(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list users failed", "error", err)
		return nil, status.Error(codes.Internal, "failed to fetch users")
	}

	out := make([]wire.User, 0, len(list))
	for _, u := range list {
		out = append(out, wire.User{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Company:   wire.Company{Name: u.Company.Name, Title: u.Company.Title},
			Address:   wire.Address{Country: u.Address.Country},
		})
	}

	resp, err := wire.ToStruct(out)
	if err != nil {
		s.logger.Error(ctx, "encode users failed", "error", err)
		return nil, status.Error(codes.Internal, "failed to encode users")
	}
	return resp, nil
}
