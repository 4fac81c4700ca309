package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/app/schema"
	"github.com/tanvir-rahman/studentinfo/internal/config"
	"github.com/tanvir-rahman/studentinfo/internal/db"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
	"github.com/tanvir-rahman/studentinfo/internal/seed"
)

func newTestDB(t *testing.T) *db.SQLiteDB {
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

func TestStudentRepository_Create(t *testing.T) {
	database := newTestDB(t)
	repo := repositories.NewStudentRepository(database.DB)
	ctx := context.Background()

	student := &models.Student{
		Roll:        "103",
		FirstName:   "Alice",
		LastName:    "Brown",
		DateOfBirth: "2002-03-04",
		Email:       "alice.brown@example.com",
		Department:  "CSE",
		Batch:       "Batch-3",
	}
	require.NoError(t, repo.Create(ctx, student))
	assert.Greater(t, student.ID, int64(0))

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestStudentRepository_FindByRollDeptBatch(t *testing.T) {
	database := newTestDB(t)
	repo := repositories.NewStudentRepository(database.DB)
	ctx := context.Background()

	student, err := repo.FindByRollDeptBatch(ctx, "101", "CSE", "Batch-1")
	require.NoError(t, err)
	assert.Equal(t, "John", student.FirstName)
	assert.Equal(t, "Doe", student.LastName)
	assert.Equal(t, "john.doe@example.com", student.Email)
}

func TestStudentRepository_FindByRollDeptBatch_NotFound(t *testing.T) {
	database := newTestDB(t)
	repo := repositories.NewStudentRepository(database.DB)

	_, err := repo.FindByRollDeptBatch(context.Background(), "101", "EEE", "Batch-1")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentRepository_FindByRollDeptBatch_DuplicateRoll(t *testing.T) {
	database := newTestDB(t)
	repo := repositories.NewStudentRepository(database.DB)
	ctx := context.Background()

	// Roll is not unique; a second row with the same key fields must not
	// make the search ambiguous.
	duplicate := &models.Student{
		Roll:       "101",
		FirstName:  "Johnny",
		LastName:   "Dupe",
		Department: "CSE",
		Batch:      "Batch-1",
	}
	require.NoError(t, repo.Create(ctx, duplicate))

	student, err := repo.FindByRollDeptBatch(ctx, "101", "CSE", "Batch-1")
	require.NoError(t, err)
	assert.Equal(t, "John", student.FirstName)
	assert.Less(t, student.ID, duplicate.ID)
}
