// Package main implements the entry point for the timekeeper API server,
// which evaluates clock-time and duration arithmetic over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/timekeeper/internal/config"
	"github.com/phrazzld/timekeeper/internal/platform/logger"
)

// main is the entry point for the timekeeper server.
// It loads configuration, sets up logging, wires the application and blocks
// serving HTTP until a shutdown signal arrives.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		logFatal(err)
	}

	app := newApplication(cfg, appLogger)
	if err := app.Run(context.Background()); err != nil {
		logFatal(err)
	}
}

func logFatal(err error) {
	log.Fatalf("timekeeper: %v", err)
}

// initializeApp loads configuration and sets up the logger.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"metrics_enabled", cfg.Metrics.Enabled)

	return cfg, l, nil
}
