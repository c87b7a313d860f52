// Package cli provides common initialization shared by cmd/vendas and
// cmd/vendas-worker.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"vendas/internal/backend"
	"vendas/internal/config"
	"vendas/internal/storage"
)

// SetupLogger initializes structured logging with default settings and sets
// it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are ignored
// as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting the
// process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore builds the configured snapshot store, exiting the process on
// failure. The returned cleanup must run on shutdown.
func InitStore(logger *slog.Logger, cfg *config.Config) (storage.Store, backend.CleanupFunc) {
	store, cleanup, err := backend.CreateStore(backend.Config{
		Type:          backend.Type(cfg.SnapshotBackend),
		DataDirectory: cfg.DataDirectory,
		SQLiteDBPath:  cfg.SQLiteDBPath,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize snapshot store",
			"error", err, "backend", cfg.SnapshotBackend)
		os.Exit(1)
	}
	return store, cleanup
}

// SignalContext returns a context cancelled on SIGINT/SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
