package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Mooshieblob1/LegendsBot/internal/config"
)

// Store is the shared task list. Tasks are plain descriptions: insertion
// order is kept, duplicates are allowed, and equality is exact text match.
// Implementations are safe for concurrent use.
type Store interface {
	// AddTask appends description to the end of the list.
	AddTask(ctx context.Context, description string) error

	// ListTasks returns the descriptions in insertion order. The slice is a
	// copy and is empty, not nil, when there are no tasks.
	ListTasks(ctx context.Context) ([]string, error)

	// RemoveTask deletes the first task equal to description and reports
	// whether one was found.
	RemoveTask(ctx context.Context, description string) (bool, error)

	// Close releases resources held by the store.
	Close() error
}

// NewStore builds the backend selected by cfg.Driver.
func NewStore(cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch cfg.Driver {
	case "", "memory":
		logger.Info("Using in-memory task store")
		return NewMemoryStore(), nil
	case "sqlite":
		db, err := NewDB(cfg.DSN)
		if err != nil {
			return nil, err
		}
		logger.Info("Using SQLite task store", "dsn", cfg.DSN)
		return NewSQLStore(db, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
