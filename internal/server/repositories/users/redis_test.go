package users

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client), mr
}

func TestRedis_MissingKeyIsEmptyList(t *testing.T) {
	repo, _ := newRedisRepo(t)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRedis_ReplaceAllStoresOneBlob(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.User{john(), jane()}))

	raw, err := mr.Get(common.UsersCollection)
	require.NoError(t, err)
	assert.Contains(t, raw, `"firstName":"John"`)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{john(), jane()}, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRedis_CorruptBlob(t *testing.T) {
	repo, mr := newRedisRepo(t)
	require.NoError(t, mr.Set(common.UsersCollection, "{not json"))

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "failed to unmarshal users json")
}

func TestRedis_IncompleteRecordRejected(t *testing.T) {
	repo, mr := newRedisRepo(t)

	u := john()
	u.Company.Title = ""
	assert.ErrorIs(t, repo.ReplaceAll(context.Background(), []models.User{u}), common.ErrorIncompleteRecord)
	assert.False(t, mr.Exists(common.UsersCollection))
}

func TestRedis_ServerDown(t *testing.T) {
	repo, mr := newRedisRepo(t)
	mr.Close()

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "redis get failed")
}
