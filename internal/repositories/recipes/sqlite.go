package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/dbx"
	"github.com/dmitrijs2005/coffeetime/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.RecipeSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	defer rows.Close()

	var result []models.RecipeSummary
	for rows.Next() {
		var item models.RecipeSummary
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT id, name, description, ingredients, steps, image FROM recipes WHERE id = ?`

	var (
		rec                                    models.Recipe
		description, ingredients, steps, image sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.Name, &description, &ingredients, &steps, &image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select recipe %d: %w", id, err)
	}

	rec.Description = description.String
	rec.Ingredients = ingredients.String
	rec.Steps = steps.String
	rec.Image = image.String
	return &rec, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, rec *models.Recipe) error {
	query := `INSERT INTO recipes (name, description, ingredients, steps, image)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		rec.Name, rec.Description, rec.Ingredients, rec.Steps, rec.Image).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("failed to insert recipe %q: %w", rec.Name, err)
	}
	return nil
}
