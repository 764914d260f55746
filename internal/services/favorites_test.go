package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/coffeetime/internal/catalog"
	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	_, err := env.catalog.SeedIfEmpty(context.Background(), catalog.Default())
	require.NoError(t, err)
	return env
}

const (
	latteID int64 = 1
	capID   int64 = 2
	mokaID  int64 = 3
)

func TestAddFavorite_Idempotent(t *testing.T) {
	env := seededEnv(t)
	ctx := context.Background()
	ana := env.registerAndLogin(t, "ana")

	st, err := env.favorites.Add(ctx, ana.Token, ana.UserID, latteID)
	require.NoError(t, err)
	assert.Equal(t, AddStatusAdded, st)

	st, err = env.favorites.Add(ctx, ana.Token, ana.UserID, latteID)
	require.NoError(t, err)
	assert.Equal(t, AddStatusAlreadyExists, st)
	assert.Equal(t, "already exists", st.String())

	assert.Equal(t, 1, countRows(t, env.db, "favorites"))
}

func TestAddFavorite_UnknownRecipe(t *testing.T) {
	env := seededEnv(t)
	ana := env.registerAndLogin(t, "ana")

	st, err := env.favorites.Add(context.Background(), ana.Token, ana.UserID, 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, AddStatusUnknown, st)
	assert.Zero(t, countRows(t, env.db, "favorites"))
}

func TestFavorites_RequireMatchingSession(t *testing.T) {
	env := seededEnv(t)
	ctx := context.Background()
	ana := env.registerAndLogin(t, "ana")
	bo := env.registerAndLogin(t, "bo")

	st, err := env.favorites.Add(ctx, "", ana.UserID, latteID)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, AddStatusUnknown, st, "failed add never reads as added")

	_, err = env.favorites.Add(ctx, bo.Token, ana.UserID, latteID)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = env.favorites.List(ctx, bo.Token, ana.UserID)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = env.favorites.Remove(ctx, bo.Token, ana.UserID, latteID)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = env.favorites.IsFavorite(ctx, bo.Token, ana.UserID, latteID)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	require.NoError(t, env.auth.Logout(ctx, ana.Token))
	_, err = env.favorites.Add(ctx, ana.Token, ana.UserID, latteID)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	assert.Zero(t, countRows(t, env.db, "favorites"))
}

func TestListFavorites_OrderAndIsolation(t *testing.T) {
	env := seededEnv(t)
	ctx := context.Background()
	ana := env.registerAndLogin(t, "ana")
	bo := env.registerAndLogin(t, "bo")

	for _, id := range []int64{mokaID, latteID} {
		_, err := env.favorites.Add(ctx, ana.Token, ana.UserID, id)
		require.NoError(t, err)
	}
	_, err := env.favorites.Add(ctx, bo.Token, bo.UserID, capID)
	require.NoError(t, err)

	got, err := env.favorites.List(ctx, ana.Token, ana.UserID)
	require.NoError(t, err)
	assert.Equal(t, []models.RecipeSummary{{ID: mokaID, Name: "Moka"}, {ID: latteID, Name: "Café Latte"}}, got)

	got, err = env.favorites.List(ctx, bo.Token, bo.UserID)
	require.NoError(t, err)
	assert.Equal(t, []models.RecipeSummary{{ID: capID, Name: "Capuccino"}}, got)
}

func TestRemoveAndIsFavorite(t *testing.T) {
	env := seededEnv(t)
	ctx := context.Background()
	ana := env.registerAndLogin(t, "ana")

	_, err := env.favorites.Add(ctx, ana.Token, ana.UserID, capID)
	require.NoError(t, err)

	ok, err := env.favorites.IsFavorite(ctx, ana.Token, ana.UserID, capID)
	require.NoError(t, err)
	assert.True(t, ok)

	removed, err := env.favorites.Remove(ctx, ana.Token, ana.UserID, capID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = env.favorites.Remove(ctx, ana.Token, ana.UserID, capID)
	require.NoError(t, err)
	assert.False(t, removed)

	ok, err = env.favorites.IsFavorite(ctx, ana.Token, ana.UserID, capID)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := env.favorites.List(ctx, ana.Token, ana.UserID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddStatusString(t *testing.T) {
	assert.Equal(t, "unknown", AddStatusUnknown.String())
	assert.Equal(t, "added", AddStatusAdded.String())
	assert.Zero(t, AddStatusUnknown, "zero value is not a success")
	assert.Equal(t, "AddStatus(7)", AddStatus(7).String())
}
