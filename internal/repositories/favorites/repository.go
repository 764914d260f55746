// Package favorites stores which recipes each user marked as favorite.
package favorites

import (
	"context"

	"github.com/dmitrijs2005/coffeetime/internal/models"
)

// Repository describes persistence of favorites.
type Repository interface {
	// Add inserts the (userID, recipeID) pair. It reports false without error
	// when the pair already exists. Unknown user or recipe yields
	// common.ErrorNotFound.
	Add(ctx context.Context, userID, recipeID int64) (bool, error)

	// Remove deletes the pair and reports whether it existed.
	Remove(ctx context.Context, userID, recipeID int64) (bool, error)

	// Get returns the stored pair or common.ErrorNotFound.
	Get(ctx context.Context, userID, recipeID int64) (*models.Favorite, error)

	// ListRecipes returns the recipes favorited by userID in the order the
	// favorites were added.
	ListRecipes(ctx context.Context, userID int64) ([]models.RecipeSummary, error)
}
