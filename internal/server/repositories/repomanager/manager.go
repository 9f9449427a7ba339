// Package repomanager opens the configured storage backend, runs schema
// migrations for the SQL backends, and vends the users repository.
package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userlist/internal/common"
	"github.com/dmitrijs2005/userlist/internal/dbx"
	"github.com/dmitrijs2005/userlist/internal/filex"
	"github.com/dmitrijs2005/userlist/internal/server/config"
	"github.com/dmitrijs2005/userlist/internal/server/migrations"
	"github.com/dmitrijs2005/userlist/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	_ "modernc.org/sqlite"
)

const connectTimeout = 10 * time.Second

// Manager owns the storage connection for the lifetime of the process.
type Manager struct {
	backend string
	users   users.Repository
	db      *sql.DB
	closers []func(context.Context) error
}

// Users returns the repository for the opened backend.
func (m *Manager) Users() users.Repository {
	return m.users
}

// Backend returns the backend name the manager was opened with.
func (m *Manager) Backend() string {
	return m.backend
}

// DB returns the SQL handle for the postgres and sqlite backends, nil
// otherwise.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// Close releases every connection opened by Open.
func (m *Manager) Close(ctx context.Context) error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open connects to cfg.StorageBackend. SQL backends are migrated before
// Open returns.
func Open(ctx context.Context, cfg *config.Config) (*Manager, error) {
	m := &Manager{backend: cfg.StorageBackend}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		m.users = users.NewInMemoryRepository()

	case config.BackendPostgres, config.BackendSQLite:
		if err := m.openSQL(ctx, cfg.StorageBackend, cfg.DatabaseDSN); err != nil {
			return nil, err
		}

	case config.BackendMongo:
		if err := m.openMongo(ctx, cfg.MongoURI, cfg.MongoDatabase); err != nil {
			return nil, err
		}

	case config.BackendRedis:
		if err := m.openRedis(ctx, cfg.RedisAddr, cfg.RedisPassword); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%q: %w", cfg.StorageBackend, common.ErrorUnsupportedBackend)
	}

	return m, nil
}

func (m *Manager) openSQL(ctx context.Context, backend, dsn string) error {
	driver := "pgx"
	if backend == config.BackendSQLite {
		driver = "sqlite"
		if path := sqliteFilePath(dsn); path != "" {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return err
			}
		}
	}

	db, err := dbx.Open(ctx, driver, dsn)
	if err != nil {
		return err
	}

	if err := RunMigrations(ctx, db, backend); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrate %s: %w", backend, err)
	}

	m.db = db
	m.closers = append(m.closers, func(context.Context) error { return db.Close() })
	if backend == config.BackendSQLite {
		m.users = users.NewSQLiteRepository(db)
	} else {
		m.users = users.NewPostgresRepository(db)
	}
	return nil
}

// sqliteFilePath extracts the database file from a SQLite DSN such as
// "data/users.db" or "file:data/users.db?_pragma=busy_timeout(5000)". It
// returns "" for in-memory databases.
func sqliteFilePath(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	return path
}

func (m *Manager) openMongo(ctx context.Context, uri, database string) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("mongo ping: %w", err)
	}

	m.closers = append(m.closers, client.Disconnect)
	m.users = users.NewMongoRepository(client.Database(database).Collection(common.UsersCollection))
	return nil
}

func (m *Manager) openRedis(ctx context.Context, addr, password string) error {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("redis ping: %w", err)
	}

	m.closers = append(m.closers, func(context.Context) error { return client.Close() })
	m.users = users.NewRedisRepository(client)
	return nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for backend (postgres or
// sqlite) to db.
func RunMigrations(ctx context.Context, db *sql.DB, backend string) error {
	var dialect, dir string
	switch backend {
	case config.BackendPostgres:
		dialect, dir = "pgx", migrations.PostgresDir
	case config.BackendSQLite:
		dialect, dir = "sqlite3", migrations.SQLiteDir
	default:
		return fmt.Errorf("migrations for %q: %w", backend, common.ErrorUnsupportedBackend)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, dir)
}
