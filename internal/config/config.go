// Package config holds run configuration for the migration commands:
// default file locations, the storefront base URL, and logging settings.
// Values come from the environment; command flags override them.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Files   FilesConfig
	Report  ReportConfig
	Logging LoggingConfig
}

// FilesConfig carries the default input/output paths shared by the
// commands. Each command validates existence of the files it actually
// reads before processing.
type FilesConfig struct {
	Content string `validate:"required"`
	Export  string `validate:"required"`
	Updated string `validate:"required"`
}

type ReportConfig struct {
	BaseURL string `validate:"required,url"`
	Limit   int    `validate:"gte=0"`
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (Config, error) {
	cfg := Config{
		Files: FilesConfig{
			Content: getEnv("PLP_CONTENT_FILE", "new-plp-content.csv"),
			Export:  getEnv("SHOPIFY_EXPORT_FILE", "shopify-categories-export.csv"),
			Updated: getEnv("SHOPIFY_UPDATED_FILE", "shopify-categories-updated.csv"),
		},
		Report: ReportConfig{
			BaseURL: getEnv("SHOP_BASE_URL", "https://example-store.myshopify.com"),
			Limit:   getEnvInt("REPORT_LIMIT", 10),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
