package seed_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tanvir-rahman/studentinfo/internal/app/schema"
	"github.com/tanvir-rahman/studentinfo/internal/config"
	"github.com/tanvir-rahman/studentinfo/internal/db"
	"github.com/tanvir-rahman/studentinfo/internal/seed"
)

func newSeededDB(t *testing.T) *db.SQLiteDB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "school.db")
	cfg.Database.BusyTimeoutMS = 5000

	database, err := db.NewSQLiteDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	require.NoError(t, schema.Ensure(ctx, database.DB))
	require.NoError(t, seed.IfEmpty(ctx, database, zerolog.Nop()))

	return database
}

func tableCounts(t *testing.T, database *db.SQLiteDB) map[string]int {
	t.Helper()

	counts := make(map[string]int)
	for _, table := range []string{"students", "courses", "enrollments", "grades", "attendance"} {
		var count int
		err := database.DB.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count)
		require.NoError(t, err)
		counts[table] = count
	}
	return counts
}

func TestIfEmpty_InsertsSampleData(t *testing.T) {
	database := newSeededDB(t)

	counts := tableCounts(t, database)
	for table, count := range counts {
		require.Equal(t, 2, count, "table %s", table)
	}

	rows, err := database.DB.Query(`SELECT roll FROM students ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var rolls []string
	for rows.Next() {
		var roll string
		require.NoError(t, rows.Scan(&roll))
		rolls = append(rolls, roll)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"101", "102"}, rolls)

	var names []string
	courseRows, err := database.DB.Query(`SELECT name FROM courses ORDER BY id`)
	require.NoError(t, err)
	defer courseRows.Close()
	for courseRows.Next() {
		var name string
		require.NoError(t, courseRows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, courseRows.Err())
	require.Equal(t, []string{"Mathematics", "Physics"}, names)
}

func TestIfEmpty_SecondRunChangesNothing(t *testing.T) {
	database := newSeededDB(t)

	before := tableCounts(t, database)
	require.NoError(t, seed.IfEmpty(context.Background(), database, zerolog.Nop()))
	require.Equal(t, before, tableCounts(t, database))
}
