package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"chatter-metrics-service/internal/metrics/core/domain"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
		check   func(*testing.T, *Config)
	}{
		{
			name: "default values",
			env:  map[string]string{"POSTGRES_DSN": "postgres://localhost/chatters"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.HTTPAddr != ":8080" {
					t.Errorf("expected addr :8080, got %s", cfg.HTTPAddr)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("expected log level info, got %s", cfg.LogLevel)
				}
				if cfg.DBMaxOpenConns != 20 || cfg.DBMaxIdleConns != 10 {
					t.Errorf("unexpected pool sizes %d/%d", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
				}
				if cfg.DBConnMaxLifetime != 30*time.Minute {
					t.Errorf("expected 30m lifetime, got %v", cfg.DBConnMaxLifetime)
				}
				if cfg.ShutdownTimeout != 5*time.Second {
					t.Errorf("expected 5s shutdown timeout, got %v", cfg.ShutdownTimeout)
				}
				want := domain.Thresholds{ExcellentMin: 100, ReviewMax: 40}
				if cfg.Thresholds() != want {
					t.Errorf("expected %+v, got %+v", want, cfg.Thresholds())
				}
				if cfg.AutoMigrate || cfg.OTELEnabled {
					t.Errorf("expected migrate and otel off by default")
				}
			},
		},
		{
			name: "custom values",
			env: map[string]string{
				"POSTGRES_DSN":      "postgres://db/chatters",
				"HTTP_ADDR":         ":9000",
				"LOG_LEVEL":         "debug",
				"LOG_FILE":          "/var/log/chatters.log",
				"ALLOWED_ORIGINS":   "http://example.com, http://test.com",
				"SPH_EXCELLENT_MIN": "150",
				"SPH_REVIEW_MAX":    "50.5",
				"OTEL_ENABLED":      "true",
				"OTEL_ENDPOINT":     "collector:4317",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.HTTPAddr != ":9000" {
					t.Errorf("expected addr :9000, got %s", cfg.HTTPAddr)
				}
				if cfg.LogFile != "/var/log/chatters.log" {
					t.Errorf("unexpected log file %q", cfg.LogFile)
				}
				if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://test.com" {
					t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
				}
				if cfg.SPHExcellentMin != 150 || cfg.SPHReviewMax != 50.5 {
					t.Errorf("unexpected thresholds %v/%v", cfg.SPHExcellentMin, cfg.SPHReviewMax)
				}
				if !cfg.OTELEnabled || cfg.OTELEndpoint != "collector:4317" {
					t.Errorf("unexpected otel settings")
				}
			},
		},
		{
			name:    "missing dsn",
			env:     map[string]string{},
			wantErr: errAny,
		},
		{
			name: "review max above excellent min",
			env: map[string]string{
				"POSTGRES_DSN":      "postgres://localhost/chatters",
				"SPH_EXCELLENT_MIN": "40",
				"SPH_REVIEW_MAX":    "100",
			},
			wantErr: domain.ErrInvalidThresholds,
		},
		{
			name: "otel without endpoint",
			env: map[string]string{
				"POSTGRES_DSN": "postgres://localhost/chatters",
				"OTEL_ENABLED": "true",
			},
			wantErr: errAny,
		},
		{
			name: "invalid number",
			env: map[string]string{
				"POSTGRES_DSN":      "postgres://localhost/chatters",
				"DB_MAX_OPEN_CONNS": "many",
			},
			wantErr: errAny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				if tt.wantErr != errAny && !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

var errAny = errors.New("any error")
