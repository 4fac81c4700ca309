package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Create inserts a new attendance record and sets its generated ID.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	return r.insert(ctx, r.db, record)
}

// CreateTx inserts a new attendance record within an existing transaction.
func (r *AttendanceRepository) CreateTx(ctx context.Context, tx *sql.Tx, record *models.Attendance) error {
	return r.insert(ctx, tx, record)
}

func (r *AttendanceRepository) insert(ctx context.Context, q Execer, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (enrollment_id, attendance_date, status)
		VALUES (?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		record.EnrollmentID,
		record.AttendanceDate,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading new attendance id: %w", err)
	}
	record.ID = id

	return nil
}

// GetAll retrieves all attendance records in storage order.
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	query := `
		SELECT id, enrollment_id, attendance_date, status
		FROM attendance
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetByStudentID retrieves one student's attendance records through the
// enrollment chain.
func (r *AttendanceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.enrollment_id, a.attendance_date, a.status
		FROM attendance a
		JOIN enrollments e ON a.enrollment_id = e.id
		WHERE e.student_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows *sql.Rows) ([]*models.Attendance, error) {
	var records []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		var date, status sql.NullString
		if err := rows.Scan(&record.ID, &record.EnrollmentID, &date, &status); err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		record.AttendanceDate = date.String
		record.Status = status.String
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
