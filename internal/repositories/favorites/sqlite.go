package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *SQLiteRepository) Add(ctx context.Context, userID, recipeID int64) (bool, error) {
	query := `INSERT INTO favorites (user_id, recipe_id) VALUES (?, ?)
		ON CONFLICT (user_id, recipe_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("user %d or recipe %d: %w", userID, recipeID, common.ErrorNotFound)
		}
		return false, fmt.Errorf("failed to insert favorite: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra == 1, nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, userID, recipeID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra == 1, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, recipeID int64) (*models.Favorite, error) {
	query := `SELECT user_id, recipe_id, CAST(strftime('%s', created_at) AS INTEGER)
		FROM favorites WHERE user_id = ? AND recipe_id = ?`

	var (
		f       models.Favorite
		created int64
	)
	err := r.db.QueryRowContext(ctx, query, userID, recipeID).Scan(&f.UserID, &f.RecipeID, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select favorite: %w", err)
	}
	f.CreatedAt = time.Unix(created, 0).UTC()
	return &f, nil
}

func (r *SQLiteRepository) ListRecipes(ctx context.Context, userID int64) ([]models.RecipeSummary, error) {
	query := `SELECT r.id, r.name
		FROM favorites f
		JOIN recipes r ON r.id = f.recipe_id
		WHERE f.user_id = ?
		ORDER BY f.rowid`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select favorites: %w", err)
	}
	defer rows.Close()

	var result []models.RecipeSummary
	for rows.Next() {
		var item models.RecipeSummary
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorite rows: %w", err)
	}
	return result, nil
}
