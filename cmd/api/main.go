package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"smart-task-scheduler/config"
	_ "smart-task-scheduler/docs" // Swagger docs
	"smart-task-scheduler/internal/httpserver"
	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	taskHTTP "smart-task-scheduler/internal/task/delivery/http"
	"smart-task-scheduler/internal/task/repository"
	memoryRepo "smart-task-scheduler/internal/task/repository/memory"
	sqliteRepo "smart-task-scheduler/internal/task/repository/sqlite"
	"smart-task-scheduler/internal/task/usecase"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/tracing"
)

// @title       Smart Task Scheduler API
// @description Adds tasks and lists them by priority, then deadline.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Scheduler API...")
	logger.Infof(ctx, "Environment: %s, storage: %s", cfg.Environment.Name, cfg.Scheduler.Storage)

	// 3. Tracing (optional)
	if cfg.Tracing.Enabled {
		out := os.Stderr
		if cfg.Tracing.Output == "stdout" {
			out = os.Stdout
		}
		tp, tErr := tracing.Init(httpserver.ServiceName, httpserver.HealthVersion, out)
		if tErr != nil {
			logger.Warnf(ctx, "Tracing disabled: %v", tErr)
		} else {
			defer func() { _ = tp.Shutdown(context.Background()) }()
		}
	}

	// 4. Metrics
	var gatherer prometheus.Gatherer
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		gatherer = registry
	}

	// 5. Task domain
	dateMathParser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Scheduler.Timezone, err)
		return
	}
	logger.Infof(ctx, "Deadline timezone: %s, relative dates: %t", dateMathParser.Location(), cfg.Scheduler.RelativeDates)

	taskRepo, closeRepo, err := newRepository(ctx, cfg.Scheduler.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task storage: ", err)
		return
	}
	defer closeRepo()

	taskUC := usecase.New(logger, taskRepo, dateMathParser, usecase.NewMetrics(registry), usecase.Options{
		RelativeDates: cfg.Scheduler.RelativeDates,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskHandler: taskHTTP.New(logger, taskUC),
		Middleware:  middleware.New(logger, middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin}),
		Gatherer:    gatherer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newRepository builds the task storage selected in config. Both drivers
// live in process memory.
func newRepository(ctx context.Context, storage string, l log.Logger) (repository.Repository, func(), error) {
	switch storage {
	case model.StorageSQLite:
		db, err := sqliteRepo.OpenInMemory(ctx, "tasks")
		if err != nil {
			return nil, nil, err
		}
		return sqliteRepo.New(db, l), func() { _ = db.Close() }, nil
	default:
		return memoryRepo.New(l), func() {}, nil
	}
}
