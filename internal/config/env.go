package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for command-line flags.
const (
	EnvDB       = "ARCADE_DB"
	EnvFPS      = "ARCADE_FPS"
	EnvLogLevel = "ARCADE_LOG_LEVEL"
)

// Env holds flag defaults read from the environment.
type Env struct {
	DB       string
	FPS      int
	LogLevel string
}

// LoadDotEnv loads the given .env files (".env" when none are given) into
// the process environment. Variables already set are not overridden, and
// missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// EnvDefaults reads ARCADE_* variables, falling back to the given defaults
// for unset or malformed values.
func EnvDefaults(def Env) Env {
	env := def
	if v := os.Getenv(EnvDB); v != "" {
		env.DB = v
	}
	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.FPS = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		env.LogLevel = v
	}
	return env
}
