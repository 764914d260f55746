package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/coffeetime/internal/dbx"
	"github.com/dmitrijs2005/coffeetime/internal/logging"
	"github.com/dmitrijs2005/coffeetime/internal/models"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/repomanager"
)

// CatalogService reads the recipe catalog and seeds it on first run.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *CatalogService {
	return &CatalogService{db: db, repomanager: m, logger: logger.With("component", "catalog")}
}

// ListRecipes returns every recipe as (id, name) ordered by id.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]models.RecipeSummary, error) {
	list, err := s.repomanager.Recipes(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	return list, nil
}

// GetRecipe returns common.ErrorNotFound for unknown ids.
func (s *CatalogService) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	r, err := s.repomanager.Recipes(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("recipe %d: %w", id, err)
	}
	return r, nil
}

// SeedIfEmpty inserts recipes in one transaction when the catalog is empty
// and returns how many were inserted.
func (s *CatalogService) SeedIfEmpty(ctx context.Context, recipes []models.Recipe) (int, error) {
	inserted := 0
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Recipes(tx)

		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for i := range recipes {
			r := recipes[i]
			r.ID = 0
			if err := repo.Create(ctx, &r); err != nil {
				return fmt.Errorf("seed %q: %w", r.Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error seeding catalog: %w", err)
	}

	if inserted > 0 {
		s.logger.Info(ctx, "catalog seeded", "recipes", inserted)
	}
	return inserted, nil
}
