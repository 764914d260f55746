package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/filex"
	"github.com/dmitrijs2005/coffeetime/internal/models"
	"github.com/dmitrijs2005/coffeetime/internal/services"
)

var errBadRecipeID = errors.New("bad recipe id")

// recipeID takes the id from args or asks for it.
func (a *App) recipeID(args []string) (int64, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(a.reader, "Enter recipe id", a.out); err != nil {
			return 0, err
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		a.printf("%q is not a recipe id.\n", raw)
		return 0, errBadRecipeID
	}
	return id, nil
}

func (a *App) printSummaries(list []models.RecipeSummary, empty string) {
	if len(list) == 0 {
		a.println(empty)
		return
	}
	for _, r := range list {
		a.printf("%3d. %s\n", r.ID, r)
	}
}

func (a *App) Recipes(ctx context.Context) error {
	list, err := a.catalogService.ListRecipes(ctx)
	if err != nil {
		a.reportError(ctx, "list recipes", err)
		return err
	}
	a.printSummaries(list, "No recipes yet.")
	return nil
}

// Show prints a recipe. A missing image file is reported but not an error.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.recipeID(args)
	if err != nil {
		return err
	}

	r, err := a.catalogService.GetRecipe(ctx, id)
	if err != nil {
		a.reportError(ctx, "show recipe", err)
		return err
	}

	title := r.Name
	if fav, err := a.favoritesService.IsFavorite(ctx, a.session.Token, a.session.UserID, r.ID); err == nil && fav {
		title += " ★"
	}

	a.println(title)
	if r.Description != "" {
		a.println(r.Description)
	}
	a.printf("\nIngredients:\n%s\n", r.Ingredients)
	a.printf("\nSteps:\n%s\n\n", r.Steps)

	if path, ok := filex.ResolveAsset(a.config.AssetsDir, r.Image); ok {
		a.printf("Image: %s\n", path)
	} else {
		a.logger.Debug(ctx, "recipe image missing", "recipe_id", r.ID, "image", r.Image)
		a.println("[image not available]")
	}
	return nil
}

func (a *App) AddFavorite(ctx context.Context, args []string) error {
	id, err := a.recipeID(args)
	if err != nil {
		return err
	}

	status, err := a.favoritesService.Add(ctx, a.session.Token, a.session.UserID, id)
	if err != nil {
		a.reportError(ctx, "add favorite", err)
		return err
	}

	if status == services.AddStatusAlreadyExists {
		a.println("Already in your favorites.")
	} else {
		a.println("Added to your favorites.")
	}
	return nil
}

func (a *App) RemoveFavorite(ctx context.Context, args []string) error {
	id, err := a.recipeID(args)
	if err != nil {
		return err
	}

	removed, err := a.favoritesService.Remove(ctx, a.session.Token, a.session.UserID, id)
	if err != nil {
		a.reportError(ctx, "remove favorite", err)
		return err
	}

	if removed {
		a.println("Removed from your favorites.")
	} else {
		a.println("That recipe is not in your favorites.")
	}
	return nil
}

func (a *App) Favorites(ctx context.Context) error {
	list, err := a.favoritesService.List(ctx, a.session.Token, a.session.UserID)
	if err != nil {
		a.reportError(ctx, "list favorites", err)
		return err
	}
	a.printSummaries(list, "No favorites yet.")
	return nil
}

// reportError prints a user-facing message for err. A rejected session is
// dropped so the user is asked to log in again.
func (a *App) reportError(ctx context.Context, op string, err error) {
	switch {
	case errors.Is(err, common.ErrTokenExpired):
		a.session = nil
		a.println("Your session has expired, please log in again.")
	case errors.Is(err, common.ErrorUnauthorized):
		a.session = nil
		a.println("Your session is no longer valid, please log in again.")
	case errors.Is(err, common.ErrorNotFound):
		a.println("Recipe not found.")
	default:
		a.logger.Error(ctx, op+" failed", "error", err)
		a.println(fmt.Sprintf("Could not %s, please try again.", op))
	}
}
