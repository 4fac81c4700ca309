package models

// Grade records a grade label for one enrollment. The label is free-form
// text; the application writes letter grades like "A".
type Grade struct {
	ID           int64  `json:"id" db:"id"`
	EnrollmentID int64  `json:"enrollmentId" db:"enrollment_id"`
	Grade        string `json:"grade" db:"grade"`

	// CourseName is populated by joined reads filtered to a student.
	CourseName string `json:"courseName,omitempty" db:"-"`
}
