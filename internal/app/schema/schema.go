// Package schema manages the structural half of database bootstrap: it
// creates the five tables if they are absent and records the applied
// baseline in a tracking table. Data seeding is a separate, independently
// callable step in internal/seed.
package schema

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"
)

//go:embed schema.sql
var schemaSQL string

// baselineVersion identifies the create-if-missing baseline. There is no
// further migration versioning; an incompatible existing file surfaces as a
// query error at startup.
const baselineVersion = "001"

// Ensure creates the five tables if they do not exist. It is idempotent and
// safe to call on every application start. Any failure here is fatal to the
// application and must be surfaced by the caller.
func Ensure(ctx context.Context, sqlDB *sql.DB) error {
	if err := ensureMigrationTableExists(ctx, sqlDB); err != nil {
		return err
	}

	applied, err := isMigrationApplied(ctx, sqlDB, baselineVersion)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("error occurred during schema creation: %w", err)
	}

	if err := recordMigration(ctx, tx, baselineVersion); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func ensureMigrationTableExists(ctx context.Context, sqlDB *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TEXT NOT NULL
	);`

	_, err := sqlDB.ExecContext(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func isMigrationApplied(ctx context.Context, sqlDB *sql.DB, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?);`
	err := sqlDB.QueryRowContext(ctx, query, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied
func recordMigration(ctx context.Context, tx *sql.Tx, version string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`,
		version, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}
