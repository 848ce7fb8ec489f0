package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override CLI defaults.
const (
	EnvConfigPath = "T2048_CONFIG"
	EnvDBPath     = "T2048_DB"
	EnvLogLevel   = "T2048_LOG_LEVEL"
)

// Env holds settings read from the process environment.
type Env struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
}

// LoadEnv reads the given .env files (default ".env") into the process
// environment without overriding variables that are already set, then
// returns the T2048_* settings. Missing files are not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}

	return Env{
		ConfigPath: os.Getenv(EnvConfigPath),
		DBPath:     os.Getenv(EnvDBPath),
		LogLevel:   os.Getenv(EnvLogLevel),
	}, nil
}

// Or returns v if set, otherwise fallback.
func Or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
