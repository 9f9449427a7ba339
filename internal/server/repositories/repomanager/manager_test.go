package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/dmitrijs2005/userlist/internal/server/config"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/dmitrijs2005/userlist/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgFor(backend string) *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.StorageBackend = backend
	return c
}

var seedUser = models.User{
	FirstName: "John",
	LastName:  "Doe",
	Company:   models.Company{Name: "Acme Corp", Title: "Engineer"},
	Address:   models.Address{Country: "USA"},
}

func roundTrip(t *testing.T, repo users.Repository) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.User{seedUser}))
	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0].FirstName)
	assert.NotEmpty(t, got[0].ID)
}

func TestOpen_Memory(t *testing.T) {
	m, err := Open(context.Background(), cfgFor(config.BackendMemory))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	assert.IsType(t, &users.InMemoryRepository{}, m.Users())
	assert.Nil(t, m.DB())
	assert.Equal(t, config.BackendMemory, m.Backend())
	roundTrip(t, m.Users())
}

func TestOpen_SQLiteRunsMigrations(t *testing.T) {
	cfg := cfgFor(config.BackendSQLite)
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "users.db")

	m, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	require.NotNil(t, m.DB())
	var name string
	require.NoError(t, m.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&name))
	assert.Equal(t, "users", name)

	roundTrip(t, m.Users())
}

func TestOpen_SQLiteCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "var", "lib")
	cfg := cfgFor(config.BackendSQLite)
	cfg.DatabaseDSN = "file:" + filepath.Join(dir, "users.db") + "?_pragma=busy_timeout(5000)"

	m, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	assert.DirExists(t, dir)
}

func TestSQLiteFilePath(t *testing.T) {
	tests := map[string]string{
		"data/users.db": "data/users.db",
		"file:data/users.db?_pragma=foreign_keys(1)": "data/users.db",
		":memory:":                          "",
		"file::memory:?cache=shared":        "",
		"file:mem?mode=memory&cache=shared": "",
		"":                                  "",
	}
	for dsn, want := range tests {
		assert.Equal(t, want, sqliteFilePath(dsn), dsn)
	}
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := cfgFor(config.BackendRedis)
	cfg.RedisAddr = mr.Addr()

	m, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	assert.IsType(t, &users.RedisRepository{}, m.Users())
	roundTrip(t, m.Users())
	assert.True(t, mr.Exists(common.UsersCollection))
}

func TestOpen_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := cfgFor(config.BackendRedis)
	cfg.RedisAddr = addr

	_, err := Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "redis ping")
}

func TestOpen_UnsupportedBackend(t *testing.T) {
	_, err := Open(context.Background(), cfgFor("cassandra"))
	assert.ErrorIs(t, err, common.ErrorUnsupportedBackend)
}

func TestRunMigrations_PicksDialectDirectory(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil, config.BackendPostgres))
	assert.Equal(t, "postgres", gotDir)

	require.NoError(t, RunMigrations(context.Background(), nil, config.BackendSQLite))
	assert.Equal(t, "sqlite", gotDir)
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	assert.ErrorIs(t, RunMigrations(context.Background(), nil, config.BackendPostgres), boom)
}

func TestRunMigrations_RejectsNonSQLBackend(t *testing.T) {
	err := RunMigrations(context.Background(), nil, config.BackendMongo)
	assert.ErrorIs(t, err, common.ErrorUnsupportedBackend)
}

func TestManagerClose_JoinsErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	var order []string

	m := &Manager{closers: []func(context.Context) error{
		func(context.Context) error { order = append(order, "a"); return first },
		func(context.Context) error { order = append(order, "b"); return second },
	}}

	err := m.Close(context.Background())
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.Equal(t, []string{"b", "a"}, order)
}
