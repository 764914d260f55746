// Package users stores CoffeeTime accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/coffeetime/internal/models"
)

// Repository describes persistence of User records.
type Repository interface {
	// Create inserts user and sets user.ID. A taken username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns common.ErrorNotFound when no user matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns common.ErrorNotFound when no user matches.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// UpdatePasswordHash replaces the stored hash of an existing user.
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}
