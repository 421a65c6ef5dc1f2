package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mfeller/bergfex-snow/internal/fetch"
	"github.com/mfeller/bergfex-snow/internal/logger"
)

// Config holds application defaults loaded from the environment. Flags take
// precedence over these values; the environment takes precedence over the
// built-in defaults.
type Config struct {
	BaseURL  string
	Language string
	DataDir  string
	LogLevel string
}

// Load reads an optional .env file and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment", nil)
	}

	return &Config{
		BaseURL:  getEnv("BERGFEX_BASE_URL", fetch.DefaultBaseURL),
		Language: getEnv("BERGFEX_LANG", "at"),
		DataDir:  getEnv("BERGFEX_DATA_DIR", "~/.local/share/bergfex-snow"),
		LogLevel: getEnv("BERGFEX_LOG_LEVEL", string(logger.LevelInfo)),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
