package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
)

func TestEnrollmentRepository_Create_AllowsRepeats(t *testing.T) {
	database := newTestDB(t)
	repo := repositories.NewEnrollmentRepository(database.DB)
	ctx := context.Background()

	first := &models.Enrollment{StudentID: 1, CourseID: 2, EnrollmentDate: "2024-02-01"}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Enrollment{StudentID: 1, CourseID: 2, EnrollmentDate: "2024-02-01"}
	require.NoError(t, repo.Create(ctx, second))

	assert.NotEqual(t, first.ID, second.ID)

	enrollments, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, enrollments, 4)
}

func TestEnrollmentRepository_GetByStudentID(t *testing.T) {
	database := newTestDB(t)
	repo := repositories.NewEnrollmentRepository(database.DB)
	ctx := context.Background()

	enrollments, err := repo.GetByStudentID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, int64(1), enrollments[0].CourseID)
	assert.Equal(t, "Mathematics", enrollments[0].CourseName)
	assert.Equal(t, "2024-01-01", enrollments[0].EnrollmentDate)
}

func TestEnrollmentRepository_GetByStudentID_Empty(t *testing.T) {
	database := newTestDB(t)
	repo := repositories.NewEnrollmentRepository(database.DB)

	enrollments, err := repo.GetByStudentID(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}
