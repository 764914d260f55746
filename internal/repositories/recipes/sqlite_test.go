package recipes

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/migrations"
	"github.com/dmitrijs2005/coffeetime/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

func TestCreateAndGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	latte := &models.Recipe{
		Name:        "Café Latte",
		Description: "Smooth coffee with steamed milk.",
		Ingredients: "Espresso\nWhole milk",
		Steps:       "1. Brew.\n2. Pour.",
		Image:       "latte.jpg",
	}
	require.NoError(t, r.Create(ctx, latte))
	require.NotZero(t, latte.ID)

	got, err := r.GetByID(ctx, latte.ID)
	require.NoError(t, err)
	assert.Equal(t, latte, got)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_NullColumnsBecomeEmpty(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO recipes (id, name) VALUES (5, 'Bare')`)
	require.NoError(t, err)

	got, err := NewSQLiteRepository(db).GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &models.Recipe{ID: 5, Name: "Bare"}, got)
}

func TestList_OrderedByID(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO recipes (id, name) VALUES (3, 'Moka'), (1, 'Café Latte'), (2, 'Capuccino')`)
	require.NoError(t, err)

	got, err := NewSQLiteRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RecipeSummary{
		{ID: 1, Name: "Café Latte"},
		{ID: 2, Name: "Capuccino"},
		{ID: 3, Name: "Moka"},
	}, got)
}

func TestList_Empty(t *testing.T) {
	got, err := NewSQLiteRepository(setupDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCount(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, r.Create(ctx, &models.Recipe{Name: "Moka"}))
	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDBErrorsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`^SELECT id, name FROM recipes`).WillReturnError(errors.New("db down"))
	_, err = r.List(ctx)
	assert.ErrorContains(t, err, "failed to select recipes")

	mock.ExpectQuery(`^SELECT id, name FROM recipes`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("not-a-number", "x"))
	_, err = r.List(ctx)
	assert.ErrorContains(t, err, "failed to scan recipe row")

	mock.ExpectQuery(`^SELECT COUNT`).WillReturnError(errors.New("db down"))
	_, err = r.Count(ctx)
	assert.ErrorContains(t, err, "failed to count recipes")

	mock.ExpectQuery(`^INSERT INTO recipes`).WillReturnError(errors.New("readonly"))
	err = r.Create(ctx, &models.Recipe{Name: "Moka"})
	assert.ErrorContains(t, err, `failed to insert recipe "Moka"`)

	require.NoError(t, mock.ExpectationsWereMet())
}
