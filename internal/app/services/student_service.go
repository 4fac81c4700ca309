package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/app/models/dto"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/db"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
)

// Defaults written alongside every new student. New students start enrolled
// in course 1 with a placeholder grade and attendance entry; the values are
// product behavior and are preserved literally.
const (
	DefaultCourseID         int64 = 1
	DefaultGrade                  = "A"
	DefaultAttendanceStatus       = models.AttendancePresent
)

const dateLayout = "2006-01-02"

// StudentService handles student-related operations
type StudentService struct {
	database       *db.SQLiteDB
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	gradeRepo      *repositories.GradeRepository
	attendanceRepo *repositories.AttendanceRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(database *db.SQLiteDB, repos *repositories.Repositories) *StudentService {
	return &StudentService{
		database:       database,
		studentRepo:    repos.StudentRepository,
		enrollmentRepo: repos.EnrollmentRepository,
		gradeRepo:      repos.GradeRepository,
		attendanceRepo: repos.AttendanceRepository,
	}
}

// validateAddStudent enforces the presence checks; all seven fields are
// required. No field content is validated beyond presence.
func validateAddStudent(req *dto.AddStudentRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"roll", req.Roll},
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"dateOfBirth", req.DateOfBirth},
		{"email", req.Email},
		{"department", req.Department},
		{"batch", req.Batch},
	}

	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("%s is required", field.name))
		}
	}

	return nil
}

// AddStudent creates a student together with its default enrollment, grade
// and attendance rows as a single all-or-nothing unit. A failure on any of
// the four inserts rolls back the whole operation, so no partial student
// records can remain.
func (s *StudentService) AddStudent(ctx context.Context, req *dto.AddStudentRequest) (*models.Student, error) {
	if err := validateAddStudent(req); err != nil {
		return nil, err
	}

	student := &models.Student{
		Roll:        req.Roll,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Department:  req.Department,
		Batch:       req.Batch,
	}

	today := time.Now().Format(dateLayout)

	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.studentRepo.CreateTx(ctx, tx, student); err != nil {
			return err
		}

		enrollment := &models.Enrollment{
			StudentID:      student.ID,
			CourseID:       DefaultCourseID,
			EnrollmentDate: today,
		}
		if err := s.enrollmentRepo.CreateTx(ctx, tx, enrollment); err != nil {
			return err
		}

		grade := &models.Grade{
			EnrollmentID: enrollment.ID,
			Grade:        DefaultGrade,
		}
		if err := s.gradeRepo.CreateTx(ctx, tx, grade); err != nil {
			return err
		}

		record := &models.Attendance{
			EnrollmentID:   enrollment.ID,
			AttendanceDate: today,
			Status:         DefaultAttendanceStatus,
		}
		return s.attendanceRepo.CreateTx(ctx, tx, record)
	})
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to add student")
	}

	return student, nil
}

// SearchStudent performs the exact-match lookup on roll, department and
// batch. Not finding a student is a normal outcome and surfaces as
// apperrors.ErrStudentNotFound.
func (s *StudentService) SearchStudent(ctx context.Context, roll, department, batch string) (*models.Student, error) {
	student, err := s.studentRepo.FindByRollDeptBatch(ctx, roll, department, batch)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, apperrors.NewStorageError(err, "failed to search student")
	}

	return student, nil
}

// ListStudents retrieves all students
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list students")
	}
	return students, nil
}

// EnrollmentsForStudent returns one student's enrollments with course names
// resolved at the storage layer.
func (s *StudentService) EnrollmentsForStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list enrollments for student")
	}
	return enrollments, nil
}

// GradesForStudent returns one student's grades resolved through the
// enrollment chain.
func (s *StudentService) GradesForStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	grades, err := s.gradeRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list grades for student")
	}
	return grades, nil
}

// AttendanceForStudent returns one student's attendance records.
func (s *StudentService) AttendanceForStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	records, err := s.attendanceRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list attendance for student")
	}
	return records, nil
}
