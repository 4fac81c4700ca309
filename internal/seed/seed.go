// Package seed inserts the fixed initial rows that make the application
// usable without manual setup. It is the data half of bootstrap; table
// creation lives in internal/app/schema.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tanvir-rahman/studentinfo/internal/db"
)

// IfEmpty inserts the sample data set when the students table has no rows.
// The check-and-insert runs in one transaction, so a failed seed leaves the
// store empty rather than partially populated. Calling it on an already
// populated store changes nothing.
func IfEmpty(ctx context.Context, database *db.SQLiteDB, lgr zerolog.Logger) error {
	var count int
	err := database.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count students: %w", err)
	}

	if count > 0 {
		return nil
	}

	lgr.Info().Msg("No data found in students table, inserting sample data...")

	return database.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		statements := []string{
			`INSERT INTO students (roll, first_name, last_name, date_of_birth, email, department, batch) VALUES
				('101', 'John', 'Doe', '2000-01-01', 'john.doe@example.com', 'CSE', 'Batch-1'),
				('102', 'Jane', 'Smith', '2001-02-01', 'jane.smith@example.com', 'EEE', 'Batch-2')`,
			`INSERT INTO courses (name, description) VALUES
				('Mathematics', 'Introduction to Algebra and Calculus'),
				('Physics', 'Fundamentals of Mechanics and Thermodynamics')`,
			`INSERT INTO enrollments (student_id, course_id, enrollment_date) VALUES
				(1, 1, '2024-01-01'),
				(2, 2, '2024-01-01')`,
			`INSERT INTO grades (enrollment_id, grade) VALUES
				(1, 'A'),
				(2, 'B')`,
			`INSERT INTO attendance (enrollment_id, attendance_date, status) VALUES
				(1, '2024-01-10', 'Present'),
				(2, '2024-01-10', 'Absent')`,
		}

		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to insert sample data: %w", err)
			}
		}

		return nil
	})
}
