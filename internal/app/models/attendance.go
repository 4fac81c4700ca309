package models

// Attendance statuses written by the application. The column itself is
// free-form text.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Attendance records one attendance entry for an enrollment.
type Attendance struct {
	ID             int64  `json:"id" db:"id"`
	EnrollmentID   int64  `json:"enrollmentId" db:"enrollment_id"`
	AttendanceDate string `json:"attendanceDate" db:"attendance_date"` // ISO date, YYYY-MM-DD
	Status         string `json:"status" db:"status"`
}
