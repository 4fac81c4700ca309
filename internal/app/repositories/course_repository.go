package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetAll retrieves all courses in storage order.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, description
		FROM courses
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var description sql.NullString
		if err := rows.Scan(&course.ID, &course.Name, &description); err != nil {
			return nil, err
		}
		if description.Valid {
			course.Description = &description.String
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, description
		FROM courses
		WHERE id = ?
	`

	var course models.Course
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&course.ID, &course.Name, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if description.Valid {
		course.Description = &description.String
	}

	return &course, nil
}
