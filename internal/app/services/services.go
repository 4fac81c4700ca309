package services

import (
	"github.com/tanvir-rahman/studentinfo/internal/app/report"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/db"
)

// Services holds all the service instances
type Services struct {
	Student    *StudentService
	Course     *CourseService
	Enrollment *EnrollmentService
	Grade      *GradeService
	Attendance *AttendanceService
	Report     *ReportService
}

// NewServices initializes all services
func NewServices(database *db.SQLiteDB, repos *repositories.Repositories, exporter *report.Exporter) *Services {
	return &Services{
		Student:    NewStudentService(database, repos),
		Course:     NewCourseService(repos),
		Enrollment: NewEnrollmentService(repos),
		Grade:      NewGradeService(repos),
		Attendance: NewAttendanceService(repos),
		Report:     NewReportService(repos, exporter),
	}
}
