package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userlist/internal/dbx"
	"github.com/dmitrijs2005/userlist/internal/server/models"
)

// Dialect selects placeholder syntax for SQLRepository.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Conn is satisfied by *sql.DB.
type Conn interface {
	dbx.DBTX
	dbx.TxBeginner
}

// SQLRepository stores users in the "users" table created by the embedded
// goose migrations. The seq column preserves insertion order.
type SQLRepository struct {
	db      Conn
	dialect Dialect
}

func NewSQLRepository(db Conn, dialect Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func NewPostgresRepository(db Conn) *SQLRepository {
	return NewSQLRepository(db, DialectPostgres)
}

func NewSQLiteRepository(db Conn) *SQLRepository {
	return NewSQLRepository(db, DialectSQLite)
}

func (r *SQLRepository) insertQuery() string {
	if r.dialect == DialectSQLite {
		return `INSERT INTO users (id, first_name, last_name, company_name, company_title, country)
		 VALUES (?, ?, ?, ?, ?, ?)`
	}
	return `INSERT INTO users (id, first_name, last_name, company_name, company_title, country)
		 VALUES ($1, $2, $3, $4, $5, $6)`
}

func (r *SQLRepository) List(ctx context.Context) ([]models.User, error) {
	query :=
		`SELECT id, first_name, last_name, company_name, company_title, country
		 FROM users
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Company.Name, &u.Company.Title, &u.Address.Country); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

func (r *SQLRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	prepared, err := prepare(users, nil)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		query := r.insertQuery()
		for _, u := range prepared {
			_, err := tx.ExecContext(ctx, query,
				u.ID, u.FirstName, u.LastName, u.Company.Name, u.Company.Title, u.Address.Country)
			if err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}
		return nil
	})
}

func (r *SQLRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
