package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"database_dsn":    "www.db",
		"assets_dir":      "/srv/img",
		"session_ttl":     "45m",
		"password_scheme": "sha256",
		"log_backend":     "zap",
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "www.db", cfg.DatabaseDSN)
		assert.Equal(t, "/srv/img", cfg.AssetsDir)
		assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
		assert.Equal(t, "sha256", cfg.PasswordScheme)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep their value")
	})

	t.Run("no config flag leaves cfg untouched", func(t *testing.T) {
		cfg := &Config{DatabaseDSN: "defaults.db", SessionTTL: 42 * time.Second}
		require.NoError(t, parseJson(cfg, []string{"-d", "other.db"}))

		assert.Equal(t, "defaults.db", cfg.DatabaseDSN)
		assert.Equal(t, 42*time.Second, cfg.SessionTTL)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-c", bad}))
	})
}
