package config

import (
	"errors"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// dotenvFile is loaded into the process environment when present
var dotenvFile = ".env"

// loadFromEnv overrides configuration with environment variables. Values
// from .env never replace variables that are already set.
func loadFromEnv(config *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return cleanenv.ReadEnv(config)
}
