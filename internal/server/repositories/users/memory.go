package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userlist/internal/server/models"
)

// InMemoryRepository keeps users in a slice guarded by a mutex. Data does not
// outlive the process.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *InMemoryRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	prepared, err := prepare(users, nil)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.users = prepared
	r.mu.Unlock()
	return nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
