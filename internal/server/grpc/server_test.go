package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/userlist/internal/logging"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/dmitrijs2005/userlist/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeUsers struct {
	list []models.User
	err  error
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) { return f.list, f.err }

func startBufServer(t *testing.T, us UserService) grpc.ClientConnInterface {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer("bufnet", logging.Nop(), us)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return conn
}

func TestListUsers_OverBufconn(t *testing.T) {
	conn := startBufServer(t, &fakeUsers{list: []models.User{{
		ID:        "7",
		FirstName: "Jane",
		LastName:  "Smith",
		Company:   models.Company{Name: "Globex", Title: "Manager"},
		Address:   models.Address{Country: "Canada"},
	}}})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := wire.ListUsers(ctx, conn)
	require.NoError(t, err)

	got, err := wire.FromStruct(resp)
	require.NoError(t, err)
	assert.Equal(t, []wire.User{{
		ID:        "7",
		FirstName: "Jane",
		LastName:  "Smith",
		Company:   wire.Company{Name: "Globex", Title: "Manager"},
		Address:   wire.Address{Country: "Canada"},
	}}, got)
}

func TestHealthService(t *testing.T) {
	conn := startBufServer(t, &fakeUsers{})

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: wire.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestListUsers_EmptyList(t *testing.T) {
	conn := startBufServer(t, &fakeUsers{})

	resp, err := wire.ListUsers(context.Background(), conn)
	require.NoError(t, err)

	got, err := wire.FromStruct(resp)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListUsers_ServiceErrorIsInternal(t *testing.T) {
	conn := startBufServer(t, &fakeUsers{err: errors.New("db down")})

	_, err := wire.ListUsers(context.Background(), conn)
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "failed to fetch users", status.Convert(err).Message())
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := NewGRPCServer("", logging.Nop(), &fakeUsers{})
	info := &grpc.UnaryServerInfo{FullMethod: wire.ListUsersFullMethod}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	boom := status.Error(codes.Unavailable, "x")
	_, err = s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, boom
	})
	assert.Equal(t, boom, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop(), &fakeUsers{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), &fakeUsers{})
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error for invalid port")
	}
}
