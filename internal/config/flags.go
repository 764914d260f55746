package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/coffeetime/internal/flagx"
)

var knownFlags = []string{"-d", "-m", "-s", "-t", "-p", "-l", "-b", "-f"}

// parseFlags overlays cfg with the flags it knows about; other arguments,
// such as -c, are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("coffeetime", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database file or DSN")
	fs.StringVar(&cfg.AssetsDir, "m", cfg.AssetsDir, "directory with recipe images")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "session token secret")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme: argon2id, bcrypt, sha256")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend: slog or zap")
	fs.StringVar(&cfg.SeedFile, "f", cfg.SeedFile, "recipe catalog JSON used for first-run seeding")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	return nil
}
