package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// sqlxStore implements Store on top of a migrated SQLite database.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewSQLStore creates a Store backed by db, which must already be migrated
// (see NewDB). The store owns db and closes it in Close.
func NewSQLStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) AddTask(ctx context.Context, description string) error {
	row := taskRow{
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	const query = `INSERT INTO tasks (description, created_at) VALUES (:description, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		s.logger.ErrorContext(ctx, "Failed to insert task", "error", err)
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *sqlxStore) ListTasks(ctx context.Context) ([]string, error) {
	tasks := []string{}

	const query = `SELECT description FROM tasks ORDER BY id ASC`
	if err := s.db.SelectContext(ctx, &tasks, query); err != nil {
		s.logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *sqlxStore) RemoveTask(ctx context.Context, description string) (bool, error) {
	const query = `
		DELETE FROM tasks
		WHERE id = (SELECT id FROM tasks WHERE description = ? ORDER BY id ASC LIMIT 1)`

	result, err := s.db.ExecContext(ctx, query, description)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to delete task", "error", err)
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (s *sqlxStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.logger.Info("Database connection closed successfully.")
	return nil
}
