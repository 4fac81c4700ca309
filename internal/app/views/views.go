// Package views turns independently fetched full-table result sets into
// display-ready records by resolving ID references to human-readable names
// in memory. It performs no storage access; the same inputs always produce
// the same output. For per-student subsets, prefer the joined reads in the
// repositories and skip this package entirely.
package views

import "github.com/tanvir-rahman/studentinfo/internal/app/models"

// UnknownLabel is substituted when an ID reference does not resolve to a
// loaded row. A dangling reference degrades the display, it never fails it.
const UnknownLabel = "Unknown"

// EnrollmentView is an enrollment row annotated with resolved names.
type EnrollmentView struct {
	ID             int64  `json:"id"`
	StudentID      int64  `json:"studentId"`
	CourseID       int64  `json:"courseId"`
	EnrollmentDate string `json:"enrollmentDate"`
	StudentName    string `json:"studentName"`
	CourseName     string `json:"courseName"`
}

// GradeView is a grade row annotated with the resolved student name.
type GradeView struct {
	ID           int64  `json:"id"`
	EnrollmentID int64  `json:"enrollmentId"`
	Grade        string `json:"grade"`
	StudentName  string `json:"studentName"`
}

// AttendanceView is an attendance row annotated with the resolved student name.
type AttendanceView struct {
	ID             int64  `json:"id"`
	EnrollmentID   int64  `json:"enrollmentId"`
	AttendanceDate string `json:"attendanceDate"`
	Status         string `json:"status"`
	StudentName    string `json:"studentName"`
}

// AnnotateEnrollments resolves each enrollment's student and course to their
// display names.
func AnnotateEnrollments(enrollments []*models.Enrollment, students []*models.Student, courses []*models.Course) []EnrollmentView {
	result := make([]EnrollmentView, 0, len(enrollments))
	for _, enrollment := range enrollments {
		view := EnrollmentView{
			ID:             enrollment.ID,
			StudentID:      enrollment.StudentID,
			CourseID:       enrollment.CourseID,
			EnrollmentDate: enrollment.EnrollmentDate,
			StudentName:    UnknownLabel,
			CourseName:     UnknownLabel,
		}
		if student := findStudent(students, enrollment.StudentID); student != nil {
			view.StudentName = student.FirstName
		}
		if course := findCourse(courses, enrollment.CourseID); course != nil {
			view.CourseName = course.Name
		}
		result = append(result, view)
	}
	return result
}

// AnnotateGrades resolves each grade's student name through the enrollment
// chain.
func AnnotateGrades(grades []*models.Grade, enrollments []*models.Enrollment, students []*models.Student) []GradeView {
	result := make([]GradeView, 0, len(grades))
	for _, grade := range grades {
		view := GradeView{
			ID:           grade.ID,
			EnrollmentID: grade.EnrollmentID,
			Grade:        grade.Grade,
			StudentName:  resolveStudentName(grade.EnrollmentID, enrollments, students),
		}
		result = append(result, view)
	}
	return result
}

// AnnotateAttendance resolves each attendance record's student name through
// the enrollment chain.
func AnnotateAttendance(records []*models.Attendance, enrollments []*models.Enrollment, students []*models.Student) []AttendanceView {
	result := make([]AttendanceView, 0, len(records))
	for _, record := range records {
		view := AttendanceView{
			ID:             record.ID,
			EnrollmentID:   record.EnrollmentID,
			AttendanceDate: record.AttendanceDate,
			Status:         record.Status,
			StudentName:    resolveStudentName(record.EnrollmentID, enrollments, students),
		}
		result = append(result, view)
	}
	return result
}

func resolveStudentName(enrollmentID int64, enrollments []*models.Enrollment, students []*models.Student) string {
	for _, enrollment := range enrollments {
		if enrollment.ID == enrollmentID {
			if student := findStudent(students, enrollment.StudentID); student != nil {
				return student.FirstName
			}
			return UnknownLabel
		}
	}
	return UnknownLabel
}

func findStudent(students []*models.Student, id int64) *models.Student {
	for _, student := range students {
		if student.ID == id {
			return student
		}
	}
	return nil
}

func findCourse(courses []*models.Course, id int64) *models.Course {
	for _, course := range courses {
		if course.ID == id {
			return course
		}
	}
	return nil
}
