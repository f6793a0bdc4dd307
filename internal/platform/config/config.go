// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the API server and the CLI.
type Config struct {
	PostgresDSN       string        `envconfig:"POSTGRES_DSN" required:"true"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate       bool          `envconfig:"AUTO_MIGRATE" default:"false"`

	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile       string `envconfig:"LOG_FILE"`
	LogMaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	LogMaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`

	SPHExcellentMin float64 `envconfig:"SPH_EXCELLENT_MIN" default:"100"`
	SPHReviewMax    float64 `envconfig:"SPH_REVIEW_MAX" default:"40"`

	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT"`
	OTELInsecure bool   `envconfig:"OTEL_INSECURE" default:"false"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := cfg.Thresholds().Validate(); err != nil {
		return nil, fmt.Errorf("invalid SPH thresholds: %w", err)
	}
	if cfg.OTELEnabled && cfg.OTELEndpoint == "" {
		return nil, fmt.Errorf("OTEL_ENDPOINT is required when OTEL_ENABLED is set")
	}

	return &cfg, nil
}

// Thresholds are the dashboard classification bounds.
func (c *Config) Thresholds() domain.Thresholds {
	return domain.Thresholds{ExcellentMin: c.SPHExcellentMin, ReviewMax: c.SPHReviewMax}
}
