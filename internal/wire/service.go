package wire

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// gRPC service userlist.UserListing. The request is google.protobuf.Empty
// and the response is the UsersResponse document as a google.protobuf.Struct,
// so no generated code is needed on either side.
const (
	ServiceName         = "userlist.UserListing"
	ListUsersFullMethod = "/" + ServiceName + "/ListUsers"
)

// UserListingServer is implemented by the gRPC server.
type UserListingServer interface {
	ListUsers(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
}

func listUsersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserListingServer).ListUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListUsersFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserListingServer).ListUsers(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// UserListingServiceDesc describes userlist.UserListing for grpc.Server.
var UserListingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserListingServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListUsers",
			Handler:    listUsersHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "userlist.proto",
}

// RegisterUserListingServer registers srv on s.
func RegisterUserListingServer(s grpc.ServiceRegistrar, srv UserListingServer) {
	s.RegisterService(&UserListingServiceDesc, srv)
}

// ListUsers calls userlist.UserListing/ListUsers on cc.
func ListUsers(ctx context.Context, cc grpc.ClientConnInterface, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, ListUsersFullMethod, new(emptypb.Empty), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
