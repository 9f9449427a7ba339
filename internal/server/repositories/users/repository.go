// Package users contains the storage backends for user records. Every
// backend keeps records in insertion order and enforces the same schema
// rule: all five name/company/country strings are required.
package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	// List returns all stored users in insertion order.
	List(ctx context.Context) ([]models.User, error)
	// ReplaceAll atomically swaps the stored set for users. Users without an
	// ID get one assigned.
	ReplaceAll(ctx context.Context, users []models.User) error
	// Count returns the number of stored users.
	Count(ctx context.Context) (int, error)
}

// prepare checks the schema rule, assigns missing ids with newID and rejects
// duplicate ids. The input slice is not modified.
func prepare(users []models.User, newID func() string) ([]models.User, error) {
	if newID == nil {
		newID = uuid.NewString
	}

	out := make([]models.User, len(users))
	seen := make(map[string]struct{}, len(users))

	for i, u := range users {
		if !u.Complete() {
			return nil, fmt.Errorf("record %d: %w", i, common.ErrorIncompleteRecord)
		}
		if u.ID == "" {
			u.ID = newID()
		}
		if _, ok := seen[u.ID]; ok {
			return nil, fmt.Errorf("record %d id %q: %w", i, u.ID, common.ErrorDuplicateID)
		}
		seen[u.ID] = struct{}{}
		out[i] = u
	}

	return out, nil
}
