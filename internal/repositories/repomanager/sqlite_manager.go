package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coffeetime/internal/dbx"
	"github.com/dmitrijs2005/coffeetime/internal/migrations"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/favorites"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/recipes"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/users"

	_ "modernc.org/sqlite"
)

// Pragmas appended to every DSN opened through OpenSQLite.
const dsnPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// SQLiteRepositoryManager vends SQLite-backed repository implementations.
type SQLiteRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Recipes returns a recipes.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Recipes(db dbx.DBTX) recipes.Repository {
	return recipes.NewSQLiteRepository(db)
}

// Favorites returns a favorites.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Favorites(db dbx.DBTX) favorites.Repository {
	return favorites.NewSQLiteRepository(db)
}

// migrateUp is a seam for testing migration failures.
var migrateUp = migrations.Up

// RunMigrations applies the embedded schema to db.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}

// WithPragmas returns dsn with the foreign key and busy timeout pragmas
// appended as query parameters.
func WithPragmas(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + dsnPragmas
}

// OpenSQLite opens the database at dsn, restricts the pool to a single
// connection and applies migrations through m.
func OpenSQLite(ctx context.Context, dsn string, m RepositoryManager) (*sql.DB, error) {
	db, err := sql.Open("sqlite", WithPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
