package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *sql.DB
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *sql.DB) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// Create inserts a new grade and sets its generated ID.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	return r.insert(ctx, r.db, grade)
}

// CreateTx inserts a new grade within an existing transaction.
func (r *GradeRepository) CreateTx(ctx context.Context, tx *sql.Tx, grade *models.Grade) error {
	return r.insert(ctx, tx, grade)
}

func (r *GradeRepository) insert(ctx context.Context, q Execer, grade *models.Grade) error {
	query := `
		INSERT INTO grades (enrollment_id, grade)
		VALUES (?, ?)
	`

	result, err := q.ExecContext(ctx, query, grade.EnrollmentID, grade.Grade)
	if err != nil {
		return fmt.Errorf("error creating grade: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading new grade id: %w", err)
	}
	grade.ID = id

	return nil
}

// GetAll retrieves all grades in storage order.
func (r *GradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	query := `
		SELECT id, enrollment_id, grade
		FROM grades
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(&grade.ID, &grade.EnrollmentID, &grade.Grade); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetByStudentID retrieves one student's grades, resolved through the
// enrollment chain to the course name.
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.enrollment_id, g.grade, c.name
		FROM grades g
		JOIN enrollments e ON g.enrollment_id = e.id
		JOIN courses c ON e.course_id = c.id
		WHERE e.student_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(&grade.ID, &grade.EnrollmentID, &grade.Grade, &grade.CourseName); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}
