package file

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
	"github.com/bigdata-com/bigdata-cli/internal/logger"
)

// EnvAPIKey is the environment variable holding the API key.
const EnvAPIKey = "BIGDATA_API_KEY"

// LoadDotEnv loads a .env file from the working directory when present.
// Called explicitly at startup; a missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to load .env file: %v", err)
		}
		return
	}
	logger.Debug("loaded environment from .env")
}

// ResolveAPIKey returns the API key, preferring the environment over the
// config store. An empty result means no key is configured anywhere.
func ResolveAPIKey(store driven.ConfigStore) string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		logger.Debug("using API key from %s", EnvAPIKey)
		return key
	}
	if store != nil {
		if key := store.GetString(KeyAPIKey); key != "" {
			logger.Debug("using API key from config file")
			return key
		}
	}
	return ""
}
