package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/coffeetime/internal/flagx"
	"github.com/dmitrijs2005/coffeetime/internal/timex"
)

// JsonConfig is the on-disk shape of the config file.
type JsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	AssetsDir      string         `json:"assets_dir"`
	SecretKey      string         `json:"secret_key"`
	SessionTTL     timex.Duration `json:"session_ttl"`
	PasswordScheme string         `json:"password_scheme"`
	LogLevel       string         `json:"log_level"`
	LogBackend     string         `json:"log_backend"`
	SeedFile       string         `json:"seed_file"`
}

// parseJson overlays cfg with the file named by -c/-config. Without such a
// flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.AssetsDir, jc.AssetsDir)
	setString(&cfg.SecretKey, jc.SecretKey)
	setString(&cfg.PasswordScheme, jc.PasswordScheme)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.SeedFile, jc.SeedFile)
	if jc.SessionTTL.Duration > 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
