package config

import (
	"os"
	"strconv"

	"htnscope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig selects and parameterizes the dataset source. Exactly one of
// File or DatabaseURL is used: the database wins when both are set.
type DataConfig struct {
	File        string
	DatabaseURL string
	Table       string
	CohortCap   int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			File:        getEnvOrDefault("DATASET_FILE", "hypertension_dataset.csv"),
			DatabaseURL: getEnvOrDefault("DATABASE_URL", ""),
			Table:       getEnvOrDefault("DATASET_TABLE", "patient_survey"),
			CohortCap:   getEnvIntOrDefault("COHORT_ROW_CAP", 1000),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" && config.Data.DatabaseURL == "" {
		return errors.ConfigInvalid("DATASET_FILE or DATABASE_URL is required")
	}
	if config.Data.DatabaseURL != "" && config.Data.Table == "" {
		return errors.ConfigInvalid("DATASET_TABLE is required with DATABASE_URL")
	}
	if config.Data.CohortCap <= 0 {
		return errors.ConfigInvalid("COHORT_ROW_CAP must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
