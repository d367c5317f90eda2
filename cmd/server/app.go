package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/timekeeper/internal/api/middleware"
	"github.com/phrazzld/timekeeper/internal/config"
	"github.com/phrazzld/timekeeper/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metricsNamespace prefixes every exported Prometheus metric.
const metricsNamespace = "timekeeper"

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	calculator service.CalculatorService

	registry *prometheus.Registry
	metrics  *middleware.Metrics
}

// newApplication creates a new application instance with all dependencies
// initialized. Metrics collectors are only created when metrics are enabled.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config:     cfg,
		logger:     logger,
		calculator: service.NewCalculatorService(logger),
	}

	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics = middleware.NewMetrics(metricsNamespace, app.registry)
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
