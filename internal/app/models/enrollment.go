package models

// Enrollment links one student to one course with an enrollment date.
// A student may be enrolled in the same course more than once; there is no
// uniqueness constraint on the (student, course) pair.
type Enrollment struct {
	ID             int64  `json:"id" db:"id"`
	StudentID      int64  `json:"studentId" db:"student_id"`
	CourseID       int64  `json:"courseId" db:"course_id"`
	EnrollmentDate string `json:"enrollmentDate" db:"enrollment_date"` // ISO date, YYYY-MM-DD

	// CourseName is populated by joined reads filtered to a student.
	CourseName string `json:"courseName,omitempty" db:"-"`
}
