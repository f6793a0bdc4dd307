package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	metricsRepoPg "chatter-metrics-service/internal/metrics/adapters/postgres"
	"chatter-metrics-service/internal/metrics/core/usecase"
	"chatter-metrics-service/internal/platform/config"
	"chatter-metrics-service/internal/platform/logging"
	"chatter-metrics-service/internal/platform/postgres"
	"chatter-metrics-service/internal/platform/telemetry"

	"github.com/rs/zerolog"
)

var (
	newTelemetry = telemetry.New
	openDB       = postgres.Open
)

// AppContext holds the shared dependencies of the commands.
type AppContext struct {
	Config    *config.Config
	Logger    zerolog.Logger
	DB        *sql.DB
	Telemetry *telemetry.Provider

	Reports      *usecase.RunReportUseCase
	KPIs         *usecase.SummarizeKPIsUseCase
	Rankings     *usecase.RankingsUseCase
	SavedReports *usecase.SavedReportsUseCase

	logCloser io.Closer
}

// NewAppContext loads configuration and connects to the database.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, logCloser := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Service:    "chatterctl",
	})

	tel, err := newTelemetry(ctx, telemetry.Config{
		Enabled:  cfg.OTELEnabled,
		Endpoint: cfg.OTELEndpoint,
		Insecure: cfg.OTELInsecure,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	db, err := openDB(ctx, cfg.PostgresDSN, postgres.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		_ = tel.Shutdown(ctx)
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB := metricsRepoPg.NewSQLDB(db)
	records := metricsRepoPg.NewRecordRepository(sqlDB)
	reports := usecase.NewRunReportUseCase(records)

	return &AppContext{
		Config:       cfg,
		Logger:       logger,
		DB:           db,
		Telemetry:    tel,
		Reports:      reports,
		KPIs:         usecase.NewSummarizeKPIsUseCase(records),
		Rankings:     usecase.NewRankingsUseCase(records, metricsRepoPg.NewRankingRepository(sqlDB), logger),
		SavedReports: usecase.NewSavedReportsUseCase(metricsRepoPg.NewSavedReportRepository(sqlDB), reports),
		logCloser:    logCloser,
	}, nil
}

// Close flushes telemetry and releases the database and log file.
func (a *AppContext) Close(ctx context.Context) error {
	var firstErr error
	if a.Telemetry != nil {
		if err := a.Telemetry.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// withApp runs fn with a connected AppContext and closes it afterwards.
func withApp(ctx context.Context, fn func(*AppContext) error) error {
	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(context.WithoutCancel(ctx))
	return fn(app)
}
