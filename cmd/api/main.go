package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	metricsHttp "chatter-metrics-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "chatter-metrics-service/internal/metrics/adapters/postgres"
	metricsUsecase "chatter-metrics-service/internal/metrics/core/usecase"

	perfHttp "chatter-metrics-service/internal/performance/adapters/http/fiber"
	perfRepoPg "chatter-metrics-service/internal/performance/adapters/postgres"
	perfUsecase "chatter-metrics-service/internal/performance/core/usecase"

	"chatter-metrics-service/internal/platform/config"
	"chatter-metrics-service/internal/platform/logging"
	"chatter-metrics-service/internal/platform/middleware"
	"chatter-metrics-service/internal/platform/postgres"
	"chatter-metrics-service/internal/platform/telemetry"
	"chatter-metrics-service/internal/platform/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "chatter-metrics-service/docs"
)

// @title Chatter Metrics Service API
// @version 1.0
// @description Derived metrics, ad-hoc reports, KPIs and leaderboards over chatter performance.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		bootLog := logging.NewWithWriter(os.Stderr, "info", "chatter-metrics-api")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger, logCloser := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Service:    "chatter-metrics-api",
	})
	defer logCloser.Close()

	ctx := context.Background()

	// Telemetry
	tel, err := telemetry.New(ctx, telemetry.Config{
		Enabled:  cfg.OTELEnabled,
		Endpoint: cfg.OTELEndpoint,
		Insecure: cfg.OTELInsecure,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start telemetry")
	}

	// DB connection
	db, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		_ = tel.Shutdown(ctx)
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if _, err := postgres.MigrateUp(ctx, db, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate schema")
		}
	}

	// Adapter-level DB wrappers
	perfDB := perfRepoPg.NewSQLDB(db)
	metricsDB := metricsRepoPg.NewSQLDB(db)

	// Repositories
	performanceRepository := perfRepoPg.NewPerformanceRepository(perfDB)
	recordRepository := metricsRepoPg.NewRecordRepository(metricsDB)
	rankingRepository := metricsRepoPg.NewRankingRepository(metricsDB)
	savedReportRepository := metricsRepoPg.NewSavedReportRepository(metricsDB)

	// Usecases
	upsertPerformanceUC := perfUsecase.NewUpsertPerformanceUseCase(performanceRepository)
	runReportUC := metricsUsecase.NewRunReportUseCase(recordRepository)
	kpisUC := metricsUsecase.NewSummarizeKPIsUseCase(recordRepository)
	rankingsUC := metricsUsecase.NewRankingsUseCase(recordRepository, rankingRepository, logger)
	savedReportsUC := metricsUsecase.NewSavedReportsUseCase(savedReportRepository, runReportUC)
	dashboardUC := metricsUsecase.NewDashboardUseCase(recordRepository, cfg.Thresholds())

	// HTTP (Fiber) app + middleware
	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: middleware.RequestIDKey}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, " + metricsHttp.UserIDHeader,
	}))
	app.Use(middleware.Logger(logger))

	requestMetrics, err := middleware.Metrics(tel.Meter())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create request metrics")
	}
	app.Use(requestMetrics)

	validate := validation.New()

	// performance endpoints
	performanceHandler := perfHttp.NewPerformanceHandler(upsertPerformanceUC, validate)
	app.Post("/performance", performanceHandler.UpsertPerformance)
	app.Post("/performance/bulk", performanceHandler.BulkUpsertPerformance)

	// report endpoints
	reportHandler := metricsHttp.NewReportHandler(runReportUC)
	app.Get("/reports", reportHandler.GetReport)
	app.Post("/reports/run", reportHandler.RunReport)

	savedReportHandler := metricsHttp.NewSavedReportHandler(savedReportsUC, validate)
	app.Post("/reports/saved", savedReportHandler.CreateSavedReport)
	app.Get("/reports/saved", savedReportHandler.ListSavedReports)
	app.Get("/reports/saved/:id", savedReportHandler.GetSavedReport)
	app.Delete("/reports/saved/:id", savedReportHandler.DeleteSavedReport)
	app.Post("/reports/saved/:id/run", savedReportHandler.RunSavedReport)

	// kpi + dashboard endpoints
	kpiHandler := metricsHttp.NewKPIHandler(kpisUC)
	app.Get("/kpis", kpiHandler.GetKPIs)

	dashboardHandler := metricsHttp.NewDashboardHandler(dashboardUC)
	app.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// ranking endpoints
	rankingHandler := metricsHttp.NewRankingHandler(rankingsUC, validate)
	app.Get("/rankings", rankingHandler.GetRankings)
	app.Get("/rankings/daily", rankingHandler.GetDailyLeaderboard)
	app.Post("/rankings/recompute", rankingHandler.RecomputeRankings)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logger.Info().Str("addr", cfg.HTTPAddr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("fiber shutdown error")
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("telemetry shutdown error")
	}

	logger.Info().Msg("server exiting")
}
