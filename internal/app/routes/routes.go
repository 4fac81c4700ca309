package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tanvir-rahman/studentinfo/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	recordController *controllers.RecordController,
	reportController *controllers.ReportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.AddStudent)
		students.GET("/search", studentController.SearchStudent)
		students.GET("/:id/enrollments", studentController.StudentEnrollments)
		students.GET("/:id/grades", studentController.StudentGrades)
		students.GET("/:id/attendance", studentController.StudentAttendance)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.POST("", enrollmentController.Enroll)
	}

	v1.GET("/grades", recordController.ListGrades)
	v1.GET("/attendance", recordController.ListAttendance)

	reportGroup := v1.Group("/report")
	{
		reportGroup.GET("", reportController.GetReport)
		reportGroup.POST("/export", reportController.ExportReport)
	}
}
