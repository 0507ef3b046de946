package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Report ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ReportConfig holds reconciliation run configuration
type ReportConfig struct {
	// DefaultCompany is used when a run request omits the company field.
	DefaultCompany  string
	MaxUploadSizeMB int
	// CreditRounding decides how fractional pending-off credit converts to
	// whole days: "floor" or "ceil".
	CreditRounding string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	maxUpload, err := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE_MB", "64"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	config.Report = ReportConfig{
		DefaultCompany:  getEnv("DEFAULT_COMPANY", ""),
		MaxUploadSizeMB: maxUpload,
		CreditRounding:  getEnv("CREDIT_ROUNDING", "floor"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be a valid port number")
	}
	if c.Report.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	if c.Report.CreditRounding != "floor" && c.Report.CreditRounding != "ceil" {
		return fmt.Errorf("CREDIT_ROUNDING must be floor or ceil")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
