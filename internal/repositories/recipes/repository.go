// Package recipes stores the recipe catalog.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/coffeetime/internal/models"
)

// Repository describes read access to the catalog plus the insert used
// for seeding.
type Repository interface {
	// List returns all recipes as (id, name) ordered by id.
	List(ctx context.Context) ([]models.RecipeSummary, error)

	// GetByID returns common.ErrorNotFound for unknown ids.
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)

	// Count returns the number of recipes.
	Count(ctx context.Context) (int, error)

	// Create inserts recipe and sets recipe.ID.
	Create(ctx context.Context, recipe *models.Recipe) error
}
