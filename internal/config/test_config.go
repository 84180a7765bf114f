package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the database configuration for integration tests from TEST_DB_* variables.
// When TEST_DB_HOST is not set an empty Config is returned and integration tests skip themselves.
func LoadTestConfig() (*Config, error) {
	// .env files are optional here
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Database.Host = os.Getenv("TEST_DB_HOST")
	if cfg.Database.Host == "" {
		return cfg, nil
	}

	port, err := strconv.Atoi(envOr("TEST_DB_PORT", "3306"))
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}
	cfg.Database.Port = port
	cfg.Database.User = envOr("TEST_DB_USER", "root")
	cfg.Database.Password = os.Getenv("TEST_DB_PASSWORD")
	cfg.Database.DBName = envOr("TEST_DB_NAME", "library_test")
	cfg.Migrations = envOr("TEST_MIGRATIONS_PATH", "../../migrations")

	return cfg, nil
}
