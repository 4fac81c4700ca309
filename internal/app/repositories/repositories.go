package repositories

import (
	"context"
	"database/sql"
)

// Execer is the subset of database/sql shared by *sql.DB and *sql.Tx. Write
// methods go through it so the service layer can bundle several inserts into
// one transaction.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	GradeRepository      *GradeRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		GradeRepository:      NewGradeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
