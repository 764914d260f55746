// Package repomanager vends repositories bound to a *sql.DB or *sql.Tx and
// owns opening the SQLite store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/coffeetime/internal/dbx"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/favorites"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/recipes"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Favorites(db dbx.DBTX) favorites.Repository
}
