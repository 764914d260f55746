package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/coffeetime/internal/config"
	"github.com/dmitrijs2005/coffeetime/internal/cryptox"
	"github.com/dmitrijs2005/coffeetime/internal/logging"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

// cheap argon2id parameters keep the suite fast.
var testArgon2 = cryptox.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32}

type testEnv struct {
	db        *sql.DB
	rm        repomanager.RepositoryManager
	auth      *AuthService
	catalog   *CatalogService
	favorites *FavoritesService
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.SessionTTL = time.Hour
	return cfg
}

func newTestHasher(t *testing.T, scheme string) *cryptox.Hasher {
	t.Helper()
	h, err := cryptox.NewHasherWithParams(scheme, testArgon2)
	require.NoError(t, err)
	return h
}

func newTestEnvWith(t *testing.T, cfg *config.Config, hasher cryptox.PasswordHasher) *testEnv {
	t.Helper()
	rm := repomanager.NewSQLiteRepositoryManager()
	db, err := repomanager.OpenSQLite(context.Background(), ":memory:", rm)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.Nop()
	a := NewAuthService(db, rm, hasher, cfg, log)
	return &testEnv{
		db:        db,
		rm:        rm,
		auth:      a,
		catalog:   NewCatalogService(db, rm, log),
		favorites: NewFavoritesService(db, rm, a, log),
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, newTestConfig(), newTestHasher(t, "argon2id"))
}

// registerAndLogin creates username and returns a live session for it.
func (e *testEnv) registerAndLogin(t *testing.T, username string) *Session {
	t.Helper()
	ctx := context.Background()
	_, err := e.auth.Register(ctx, username, "pw-"+username, "")
	require.NoError(t, err)
	s, err := e.auth.Login(ctx, username, "pw-"+username)
	require.NoError(t, err)
	return s
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
