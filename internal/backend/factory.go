package backend

import (
	"fmt"
	"log/slog"

	"vendas/internal/storage"
)

// CreateStore builds the configured snapshot store. The returned cleanup
// func is never nil and must be called on shutdown.
func CreateStore(cfg Config, logger *slog.Logger) (storage.Store, CleanupFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite snapshot store", "db_path", cfg.SQLiteDBPath)
		return store, store.Close, nil

	case MemoryBackend:
		logger.Info("Initialized memory snapshot store")
		return storage.NewMemoryStore(), func() error { return nil }, nil

	default:
		store, err := storage.NewFileStore(cfg.DataDirectory)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize file store: %w", err)
		}
		logger.Info("Initialized file snapshot store", "dir", cfg.DataDirectory)
		return store, func() error { return nil }, nil
	}
}
