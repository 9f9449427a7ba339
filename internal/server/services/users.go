// Package services holds the application logic of the user listing service
// on top of the storage repositories.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userlist/internal/logging"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/dmitrijs2005/userlist/internal/server/repositories/users"
)

// DefaultSeed returns the users written by Seed when no explicit set is given.
func DefaultSeed() []models.User {
	return []models.User{
		{
			FirstName: "John",
			LastName:  "Doe",
			Company:   models.Company{Name: "Acme Corp", Title: "Engineer"},
			Address:   models.Address{Country: "USA"},
		},
		{
			FirstName: "Jane",
			LastName:  "Smith",
			Company:   models.Company{Name: "Globex", Title: "Manager"},
			Address:   models.Address{Country: "Canada"},
		},
	}
}

type UserService struct {
	repo   users.Repository
	logger logging.Logger
}

func NewUserService(repo users.Repository, logger logging.Logger) *UserService {
	return &UserService{repo: repo, logger: logger.With("module", "users")}
}

// List returns every stored user in insertion order.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	s.logger.Debug(ctx, "users listed", "count", len(list))
	return list, nil
}

// Seed replaces the stored users with list, or with DefaultSeed when list
// is empty, and returns how many users were written.
func (s *UserService) Seed(ctx context.Context, list []models.User) (int, error) {
	if len(list) == 0 {
		list = DefaultSeed()
	}

	if err := s.repo.ReplaceAll(ctx, list); err != nil {
		return 0, fmt.Errorf("error seeding users: %w", err)
	}

	s.logger.Info(ctx, "users seeded", "count", len(list))
	return len(list), nil
}

// Ping checks that the storage backend answers.
func (s *UserService) Ping(ctx context.Context) error {
	if _, err := s.repo.Count(ctx); err != nil {
		return fmt.Errorf("storage unavailable: %w", err)
	}
	return nil
}
