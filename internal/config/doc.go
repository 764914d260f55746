// Package config loads runtime configuration for the CoffeeTime CLI.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-d string   SQLite database file or DSN
//	-m string   directory holding recipe images
//	-s string   HMAC secret for session tokens (random per process when empty)
//	-t int      session lifetime, minutes
//	-p string   password scheme: argon2id, bcrypt or sha256
//	-l string   log level: debug, info, warn, error
//	-b string   log backend: slog or zap
//	-f string   JSON file with the recipe catalog used for first-run seeding
//
// # JSON schema
//
//	{
//	  "database_dsn": "coffeetime.db",
//	  "assets_dir": "assets",
//	  "secret_key": "change-me",
//	  "session_ttl": "12h",
//	  "password_scheme": "argon2id",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "seed_file": ""
//	}
//
// Empty JSON values leave the current value untouched.
package config
