package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tanvir-rahman/studentinfo/internal/config"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/logger"
)

// SQLiteDB wraps the single-file relational store.
type SQLiteDB struct {
	DB *sql.DB
}

// NewSQLiteDB opens (or creates) the SQLite database file named in the
// configuration and applies the required pragmas.
//
// The database is configured with:
//   - WAL mode so reads do not block during a write
//   - foreign key enforcement for the enrollment/grade/attendance references
//   - a busy timeout for lock contention
//
// SQLite supports one writer at a time, so the pool is pinned to a single
// connection to avoid SQLITE_BUSY errors.
func NewSQLiteDB(cfg *config.Config) (*SQLiteDB, error) {
	sqlDB, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	if err := applyPragmas(ctx, sqlDB, cfg.Database.BusyTimeoutMS); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return &SQLiteDB{DB: sqlDB}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(ctx context.Context, sqlDB *sql.DB, busyTimeoutMS int) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMS),
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("pragma %q failed: %w", pragma, err)
		}
	}

	return nil
}

// Close closing method
func (d *SQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs a function within a transaction. The transaction is
// rolled back if fn returns an error or panics, committed otherwise.
func (d *SQLiteDB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r) // Re-throw panic after rollback
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
