package services

import (
	"context"
	"errors"
	"time"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/app/views"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
)

// EnrollmentService handles enrollment-related operations
type EnrollmentService struct {
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(repos *repositories.Repositories) *EnrollmentService {
	return &EnrollmentService{
		studentRepo:    repos.StudentRepository,
		courseRepo:     repos.CourseRepository,
		enrollmentRepo: repos.EnrollmentRepository,
	}
}

// Enroll inserts a new enrollment dated today. The course is looked up so a
// stale picker value surfaces as a not-found error; a dangling student
// reference is caught by the foreign keys. Enrolling the same pair twice
// creates two distinct rows.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}
	if courseID <= 0 {
		return nil, apperrors.NewValidationError("course ID must be positive")
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
		return nil, apperrors.NewStorageError(err, "failed to look up course")
	}

	enrollment := &models.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: time.Now().Format(dateLayout),
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, apperrors.NewStorageError(err, "failed to create enrollment")
	}

	return enrollment, nil
}

// ListEnrollments retrieves all enrollments
func (s *EnrollmentService) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list enrollments")
	}
	return enrollments, nil
}

// ListAnnotated returns all enrollments annotated with student and course
// names, resolved in memory from the full result sets.
func (s *EnrollmentService) ListAnnotated(ctx context.Context) ([]views.EnrollmentView, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list enrollments")
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list students")
	}

	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list courses")
	}

	return views.AnnotateEnrollments(enrollments, students, courses), nil
}
