package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"brainrot-value-bot/internal/logger"
	"brainrot-value-bot/internal/store"
	"brainrot-value-bot/internal/trace"
	"brainrot-value-bot/internal/tradelog"
)

// initializeSystem initializes env, logger, and tracer.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration.
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs compresses old trade audit files if retention is
// configured.
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("VALUES_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := tradelog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old logs", "error", err)
		}
	}
}
