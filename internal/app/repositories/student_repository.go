package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student and sets its generated ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.insert(ctx, r.db, student)
}

// CreateTx inserts a new student within an existing transaction.
func (r *StudentRepository) CreateTx(ctx context.Context, tx *sql.Tx, student *models.Student) error {
	return r.insert(ctx, tx, student)
}

func (r *StudentRepository) insert(ctx context.Context, q Execer, student *models.Student) error {
	query := `
		INSERT INTO students (roll, first_name, last_name, date_of_birth, email, department, batch)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		student.Roll,
		student.FirstName,
		student.LastName,
		student.DateOfBirth,
		student.Email,
		student.Department,
		student.Batch,
	)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading new student id: %w", err)
	}
	student.ID = id

	return nil
}

// GetAll retrieves all students in storage order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, roll, first_name, last_name, date_of_birth, email, department, batch
		FROM students
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// FindByRollDeptBatch performs the exact-match search used by the search
// screen. Roll is not unique in storage, so when duplicates exist the row
// with the lowest ID wins, which keeps the result deterministic.
func (r *StudentRepository) FindByRollDeptBatch(ctx context.Context, roll, department, batch string) (*models.Student, error) {
	query := `
		SELECT id, roll, first_name, last_name, date_of_birth, email, department, batch
		FROM students
		WHERE roll = ? AND department = ? AND batch = ?
		ORDER BY id
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, roll, department, batch)
	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error searching student: %w", err)
	}

	return student, nil
}

// CountAll returns the number of student rows.
func (r *StudentRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(s scanner) (*models.Student, error) {
	var student models.Student
	var dateOfBirth, email sql.NullString

	if err := s.Scan(
		&student.ID,
		&student.Roll,
		&student.FirstName,
		&student.LastName,
		&dateOfBirth,
		&email,
		&student.Department,
		&student.Batch,
	); err != nil {
		return nil, err
	}

	student.DateOfBirth = dateOfBirth.String
	student.Email = email.String

	return &student, nil
}
