package schema_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tanvir-rahman/studentinfo/internal/app/schema"
	"github.com/tanvir-rahman/studentinfo/internal/config"
	"github.com/tanvir-rahman/studentinfo/internal/db"
)

func newTestDB(t *testing.T) *db.SQLiteDB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "school.db")
	cfg.Database.BusyTimeoutMS = 5000

	database, err := db.NewSQLiteDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database
}

func TestEnsure_CreatesAllTables(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, schema.Ensure(ctx, database.DB))

	for _, table := range []string{"students", "courses", "enrollments", "grades", "attendance", "schema_migrations"} {
		var name string
		err := database.DB.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, schema.Ensure(ctx, database.DB))
	require.NoError(t, schema.Ensure(ctx, database.DB))

	var versions int
	err := database.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&versions)
	require.NoError(t, err)
	require.Equal(t, 1, versions)
}
