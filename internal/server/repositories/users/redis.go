package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// RedisRepository stores the whole user list as one JSON array under a
// single key. Writes replace the value in one SET, so readers never observe
// a partial list.
type RedisRepository struct {
	client redis.UniversalClient
	key    string
}

func NewRedisRepository(client redis.UniversalClient) *RedisRepository {
	return &RedisRepository{client: client, key: common.UsersCollection}
}

func (r *RedisRepository) List(ctx context.Context) ([]models.User, error) {
	return r.fetchAll(ctx)
}

func (r *RedisRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	prepared, err := prepare(users, nil)
	if err != nil {
		return err
	}
	return r.saveAll(ctx, prepared)
}

func (r *RedisRepository) Count(ctx context.Context) (int, error) {
	users, err := r.fetchAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// fetchAll reads and decodes the JSON array. A missing key is an empty list.
func (r *RedisRepository) fetchAll(ctx context.Context) ([]models.User, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users json: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *RedisRepository) saveAll(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
