// Package env reads configuration values from the process environment,
// optionally seeded from a .env file.
package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnv seeds the environment from a .env file in the working directory.
// A missing file is not fatal; callers decide whether to log the error and
// the system environment applies unchanged.
func LoadEnv() error {
	return godotenv.Load()
}

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns key parsed as an int. Unset or unparsable values fall
// back to defaultValue.
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid integer in environment, using default")
		return defaultValue
	}
	return parsed
}

// GetEnvFloat returns key parsed as a float64. Unset or unparsable values
// fall back to defaultValue.
func GetEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid float in environment, using default")
		return defaultValue
	}
	return parsed
}
