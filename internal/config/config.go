package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the CoffeeTime CLI.
type Config struct {
	DatabaseDSN    string
	AssetsDir      string
	SecretKey      string
	SessionTTL     time.Duration
	PasswordScheme string
	LogLevel       string
	LogBackend     string
	SeedFile       string
}

// LoadDefaults populates c with defaults suitable for a local desktop run.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "coffeetime.db"
	c.AssetsDir = "."
	c.SecretKey = ""
	c.SessionTTL = 12 * time.Hour
	c.PasswordScheme = "argon2id"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.SeedFile = ""
}

// LoadConfig builds a Config from defaults, the optional JSON file and the
// process command line.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
