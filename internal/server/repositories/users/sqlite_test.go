package users

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/userlist/internal/dbx"
	"github.com/dmitrijs2005/userlist/internal/server/migrations"
	"github.com/dmitrijs2005/userlist/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openMigratedSQLite(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := dbx.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(ctx, db, migrations.SQLiteDir))
	return db
}

func TestSQLite_ReplaceAllThenListKeepsOrder(t *testing.T) {
	db := openMigratedSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.User{jane(), john()}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{jane(), john()}, got)

	require.NoError(t, repo.ReplaceAll(ctx, []models.User{john()}))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLite_CheckConstraintRejectsBlankColumns(t *testing.T) {
	db := openMigratedSQLite(t)

	_, err := db.Exec(`INSERT INTO users (id, first_name, last_name, company_name, company_title, country)
		VALUES ('x', '  ', 'Doe', 'Acme', 'Eng', 'US')`)
	assert.Error(t, err)
}

func TestSQLite_DuplicateIDRollsBack(t *testing.T) {
	db := openMigratedSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []models.User{john()}))

	dup := jane()
	dup.ID = john().ID
	err := repo.ReplaceAll(ctx, []models.User{john(), dup})
	assert.Error(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{john()}, got, "failed replace must leave previous data intact")
}
