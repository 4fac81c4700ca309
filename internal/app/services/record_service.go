package services

import (
	"context"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/app/views"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
)

// GradeService handles grade-related read operations
type GradeService struct {
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	gradeRepo      *repositories.GradeRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(repos *repositories.Repositories) *GradeService {
	return &GradeService{
		studentRepo:    repos.StudentRepository,
		enrollmentRepo: repos.EnrollmentRepository,
		gradeRepo:      repos.GradeRepository,
	}
}

// ListGrades retrieves all grades
func (s *GradeService) ListGrades(ctx context.Context) ([]*models.Grade, error) {
	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list grades")
	}
	return grades, nil
}

// ListAnnotated returns all grades annotated with the student name resolved
// in memory through the enrollment chain.
func (s *GradeService) ListAnnotated(ctx context.Context) ([]views.GradeView, error) {
	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list grades")
	}

	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list enrollments")
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list students")
	}

	return views.AnnotateGrades(grades, enrollments, students), nil
}

// AttendanceService handles attendance-related read operations
type AttendanceService struct {
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(repos *repositories.Repositories) *AttendanceService {
	return &AttendanceService{
		studentRepo:    repos.StudentRepository,
		enrollmentRepo: repos.EnrollmentRepository,
		attendanceRepo: repos.AttendanceRepository,
	}
}

// ListAttendance retrieves all attendance records
func (s *AttendanceService) ListAttendance(ctx context.Context) ([]*models.Attendance, error) {
	records, err := s.attendanceRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list attendance")
	}
	return records, nil
}

// ListAnnotated returns all attendance records annotated with the student
// name resolved in memory through the enrollment chain.
func (s *AttendanceService) ListAnnotated(ctx context.Context) ([]views.AttendanceView, error) {
	records, err := s.attendanceRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list attendance")
	}

	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list enrollments")
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list students")
	}

	return views.AnnotateAttendance(records, enrollments, students), nil
}
