package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/logging"
	"github.com/dmitrijs2005/coffeetime/internal/models"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/repomanager"
)

// AddStatus is the outcome of a successful FavoritesService.Add.
type AddStatus int

const (
	AddStatusUnknown AddStatus = iota
	AddStatusAdded
	AddStatusAlreadyExists
)

func (s AddStatus) String() string {
	switch s {
	case AddStatusUnknown:
		return "unknown"
	case AddStatusAdded:
		return "added"
	case AddStatusAlreadyExists:
		return "already exists"
	default:
		return fmt.Sprintf("AddStatus(%d)", int(s))
	}
}

// FavoritesService manages favorites on behalf of an authenticated user.
type FavoritesService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	auth        Authenticator
	logger      logging.Logger
}

func NewFavoritesService(db *sql.DB, m repomanager.RepositoryManager, a Authenticator, logger logging.Logger) *FavoritesService {
	return &FavoritesService{db: db, repomanager: m, auth: a, logger: logger.With("component", "favorites")}
}

// authorize checks that token is a live session of userID.
func (s *FavoritesService) authorize(ctx context.Context, token string, userID int64) error {
	session, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		s.logger.Warn(ctx, "session does not own user", "session_user_id", session.UserID, "user_id", userID)
		return fmt.Errorf("session belongs to another user: %w", common.ErrorUnauthorized)
	}
	return nil
}

// Add marks recipeID as a favorite of userID. Adding an existing pair is not
// an error and reports AddStatusAlreadyExists.
func (s *FavoritesService) Add(ctx context.Context, token string, userID, recipeID int64) (AddStatus, error) {
	if err := s.authorize(ctx, token, userID); err != nil {
		return AddStatusUnknown, err
	}

	if _, err := s.repomanager.Recipes(s.db).GetByID(ctx, recipeID); err != nil {
		return AddStatusUnknown, fmt.Errorf("recipe %d: %w", recipeID, err)
	}

	added, err := s.repomanager.Favorites(s.db).Add(ctx, userID, recipeID)
	if err != nil {
		return AddStatusUnknown, fmt.Errorf("error adding favorite: %w", err)
	}
	if !added {
		return AddStatusAlreadyExists, nil
	}

	s.logger.Debug(ctx, "favorite added", "user_id", userID, "recipe_id", recipeID)
	return AddStatusAdded, nil
}

// List returns the favorites of userID in the order they were added.
func (s *FavoritesService) List(ctx context.Context, token string, userID int64) ([]models.RecipeSummary, error) {
	if err := s.authorize(ctx, token, userID); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Favorites(s.db).ListRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return list, nil
}

// Remove deletes a favorite and reports whether it existed.
func (s *FavoritesService) Remove(ctx context.Context, token string, userID, recipeID int64) (bool, error) {
	if err := s.authorize(ctx, token, userID); err != nil {
		return false, err
	}

	removed, err := s.repomanager.Favorites(s.db).Remove(ctx, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("error removing favorite: %w", err)
	}
	if removed {
		s.logger.Debug(ctx, "favorite removed", "user_id", userID, "recipe_id", recipeID)
	}
	return removed, nil
}

// IsFavorite reports whether recipeID is a favorite of userID.
func (s *FavoritesService) IsFavorite(ctx context.Context, token string, userID, recipeID int64) (bool, error) {
	if err := s.authorize(ctx, token, userID); err != nil {
		return false, err
	}

	_, err := s.repomanager.Favorites(s.db).Get(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error checking favorite: %w", err)
	}
	return true, nil
}
