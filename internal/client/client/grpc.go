package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const defaultGRPCTimeout = defaultHTTPTimeout

// GRPCClient calls userlist.UserListing/ListUsers.
type GRPCClient struct {
	conn    *grpc.ClientConn
	health  healthpb.HealthClient
	timeout time.Duration
}

// NewGRPCClient dials addr lazily. Each call is bounded by timeout; zero
// means the default.
func NewGRPCClient(addr string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	if timeout <= 0 {
		timeout = defaultGRPCTimeout
	}
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, health: healthpb.NewHealthClient(conn), timeout: timeout}, nil
}

func (c *GRPCClient) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := wire.ListUsers(ctx, c.conn)
	if err != nil {
		return nil, unavailable(err)
	}

	list, err := wire.FromStruct(resp)
	if err != nil {
		return nil, malformed(err)
	}
	return fromWire(list), nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: wire.ServiceName})
	if err != nil {
		return unavailable(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return unavailable(errNotServing(resp.GetStatus()))
	}
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

type errNotServing healthpb.HealthCheckResponse_ServingStatus

func (e errNotServing) Error() string {
	return "service status " + healthpb.HealthCheckResponse_ServingStatus(e).String()
}
