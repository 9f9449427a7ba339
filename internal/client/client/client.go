// Package client fetches the authoritative user list from the user listing
// service over HTTP or gRPC.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/dmitrijs2005/userlist/internal/wire"
)

var (
	// ErrUnavailable covers network, transport and non-success status failures.
	ErrUnavailable = errors.New("user listing service unavailable")
	// ErrMalformedPayload means the response could not be read as a user list.
	ErrMalformedPayload = errors.New("malformed user list payload")
)

type Client interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Ping(ctx context.Context) error
	Close() error
}

// New returns the Client for transport "http" or "grpc". timeout bounds
// every call on either transport; zero keeps the transport default.
func New(transport, endpoint, grpcAddr string, timeout time.Duration) (Client, error) {
	switch transport {
	case "", "http":
		return NewHTTPClient(endpoint, WithTimeout(timeout))
	case "grpc":
		return NewGRPCClient(grpcAddr, timeout)
	}
	return nil, fmt.Errorf("transport %q: %w", transport, common.ErrorUnsupportedOption)
}

func fromWire(list []wire.User) []models.User {
	out := make([]models.User, 0, len(list))
	for _, u := range list {
		out = append(out, models.User{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Company:   models.Company{Name: u.Company.Name, Title: u.Company.Title},
			Address:   models.Address{Country: u.Address.Country},
		})
	}
	return out
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
