package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/erp/erpapi/internal/app"
	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/infrastructure/logger"
	"github.com/erp/erpapi/internal/infrastructure/persistence"
	"github.com/erp/erpapi/internal/infrastructure/storage"
	"github.com/erp/erpapi/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Configuration errors are reported before a logger exists.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	otel := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}

	logs, err := telemetry.NewLoggerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: otel.CollectorEndpoint,
		ServiceName:       otel.ServiceName,
		Insecure:          otel.Insecure,
	}, log)
	if err != nil {
		return err
	}
	log = logs.Bridge(log, logger.ParseLevel(cfg.Log.Level))

	log.Info("Starting ERP API",
		zap.String("app", cfg.App.Name),
		zap.String("environment", string(cfg.Environment)),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)

	tracer, err := telemetry.NewTracerProvider(ctx, otel, log)
	if err != nil {
		return err
	}

	meter, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Config: telemetry.Config{
			Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
			CollectorEndpoint: otel.CollectorEndpoint,
			ServiceName:       otel.ServiceName,
			Insecure:          otel.Insecure,
		},
		ExportInterval: cfg.Telemetry.MetricsInterval,
	}, log)
	if err != nil {
		return err
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Profiling.Enabled,
		ServerAddress:     cfg.Profiling.ServerAddress,
		ApplicationName:   cfg.Telemetry.ServiceName,
		BasicAuthUser:     cfg.Profiling.BasicAuthUser,
		BasicAuthPassword: cfg.Profiling.BasicAuthPass,
		SampleRate:        cfg.Profiling.SampleRate,
	}, log)
	if err != nil {
		return err
	}
	if profiler.IsEnabled() {
		tracer.EnableSpanProfiles()
	}

	gormLog := logger.NewGormLogger(log, cfg.Database.LogLevel, cfg.Database.SlowThreshold)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        cfg.Database.Driver,
	}, log); err != nil {
		return fmt.Errorf("database tracing: %w", err)
	}

	reports, err := storage.New(ctx, &cfg.Storage, log.Named("storage"))
	if err != nil {
		return err
	}

	api, err := app.New(app.Options{
		Config:  cfg,
		DB:      db.DB,
		Logger:  log,
		Meter:   meter,
		Storage: reports,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        api.Handler(),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case sig := <-quit:
		log.Info("Shutting down server...", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	shutdownErr := errors.Join(
		meter.Shutdown(shutdownCtx),
		tracer.Shutdown(shutdownCtx),
		profiler.Stop(),
		logs.Shutdown(shutdownCtx),
	)
	if shutdownErr != nil {
		log.Error("Telemetry shutdown incomplete", zap.Error(shutdownErr))
	}

	log.Info("Server exited gracefully")
	return nil
}
