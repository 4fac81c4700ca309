package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment and sets its generated ID.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.insert(ctx, r.db, enrollment)
}

// CreateTx inserts a new enrollment within an existing transaction.
func (r *EnrollmentRepository) CreateTx(ctx context.Context, tx *sql.Tx, enrollment *models.Enrollment) error {
	return r.insert(ctx, tx, enrollment)
}

func (r *EnrollmentRepository) insert(ctx context.Context, q Execer, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, enrollment_date)
		VALUES (?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrollmentDate,
	)
	if err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading new enrollment id: %w", err)
	}
	enrollment.ID = id

	return nil
}

// GetAll retrieves all enrollments in storage order.
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := `
		SELECT id, student_id, course_id, enrollment_date
		FROM enrollments
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var date sql.NullString
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&date,
		); err != nil {
			return nil, err
		}
		enrollment.EnrollmentDate = date.String
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByStudentID retrieves one student's enrollments with the course name
// resolved by a storage-level join.
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.enrollment_date, c.name
		FROM enrollments e
		JOIN courses c ON e.course_id = c.id
		WHERE e.student_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var date sql.NullString
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&date,
			&enrollment.CourseName,
		); err != nil {
			return nil, err
		}
		enrollment.EnrollmentDate = date.String
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
