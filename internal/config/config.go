package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel        string `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	LogFormat       string `env:"LOG_FORMAT" validate:"oneof=json text"`
	Environment     string `env:"ENVIRONMENT" validate:"required"`
	ServiceName     string `env:"SERVICE_NAME" validate:"required"`
	Version         string `env:"VERSION" validate:"required"`
	CatalogPath     string `env:"CATALOG_PATH" validate:"omitempty,file"` // empty means built-in catalog
	StockPath       string `env:"STOCK_PATH" validate:"required"`
	Days            int    `env:"DAYS" validate:"min=0"`
	MetricsTextfile string `env:"METRICS_TEXTFILE"` // empty disables the metrics dump
}

// Load loads the configuration from environment variables. Env files are
// read first when present; variables already set in the process win.
func Load(envFiles ...string) (*Config, error) {
	// Missing .env is fine, real env vars may be set
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		CatalogPath:     getEnv(EnvCatalogPath, ""),
		StockPath:       getEnv(EnvStockPath, DefaultStockPath),
		MetricsTextfile: getEnv(EnvMetricsTextfile, ""),
	}

	days, err := strconv.Atoi(getEnv(EnvDays, strconv.Itoa(DefaultDays)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvDays, err)
	}
	cfg.Days = days

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// IsDevelopment reports whether the config targets a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
