// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir            string // Directory for catalog.db (always absolute)
	Port               int
	LogLevel           string
	DevMode            bool
	DomesticRegion     string // Region scaling the domestic company-size buckets
	CompareLimit       int    // Rows kept per category group in comparisons
	IncludeCompanySize bool
	GeographyFile      string // Optional geography table, embedded table when empty
	FundCatalogFile    string // Optional JSON catalog seeded into catalog.db at startup
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("FUNDS_DATA_DIR", "./data")

	// Always resolve to absolute path
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:            absDataDir,
		Port:               getEnvAsInt("PORT", 8080),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		DomesticRegion:     getEnv("DOMESTIC_REGION", "Sweden"),
		CompareLimit:       getEnvAsInt("COMPARE_LIMIT", 10),
		IncludeCompanySize: getEnvAsBool("INCLUDE_COMPANY_SIZE", true),
		GeographyFile:      getEnv("GEOGRAPHY_FILE", ""),
		FundCatalogFile:    getEnv("FUND_CATALOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.CompareLimit <= 0 {
		return fmt.Errorf("compare limit must be positive, got %d", c.CompareLimit)
	}
	if c.DomesticRegion == "" {
		return fmt.Errorf("domestic region is required")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
