// Package report renders a snapshot of the whole store into one
// self-contained HTML document and hands it to the export facility that
// writes it to a shareable file.
package report

import (
	"bytes"
	"html/template"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
)

// Snapshot holds the full contents of all five tables at one point in time.
type Snapshot struct {
	Students    []*models.Student
	Courses     []*models.Course
	Enrollments []*models.Enrollment
	Grades      []*models.Grade
	Attendance  []*models.Attendance
}

// The document carries its styling inline and references nothing external,
// so the export facility can hand it to any HTML-to-PDF converter or share
// mechanism as-is.
const reportTemplate = `<html>
<head>
<style>
body { font-family: Arial, sans-serif; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
</style>
</head>
<body>
<h1>Student Information System Report</h1>
<h2>Students</h2>
<table>
<tr><th>Roll</th><th>First Name</th><th>Last Name</th><th>Department</th><th>Batch</th></tr>
{{range .Students}}<tr><td>{{.Roll}}</td><td>{{.FirstName}}</td><td>{{.LastName}}</td><td>{{.Department}}</td><td>{{.Batch}}</td></tr>
{{end}}</table>
<h2>Courses</h2>
<table>
<tr><th>Course Name</th><th>Course Description</th></tr>
{{range .Courses}}<tr><td>{{.Name}}</td><td>{{with .Description}}{{.}}{{end}}</td></tr>
{{end}}</table>
<h2>Enrollments</h2>
<table>
<tr><th>Student ID</th><th>Course ID</th><th>Enrollment Date</th></tr>
{{range .Enrollments}}<tr><td>{{.StudentID}}</td><td>{{.CourseID}}</td><td>{{.EnrollmentDate}}</td></tr>
{{end}}</table>
<h2>Grades</h2>
<table>
<tr><th>Enrollment ID</th><th>Grade</th></tr>
{{range .Grades}}<tr><td>{{.EnrollmentID}}</td><td>{{.Grade}}</td></tr>
{{end}}</table>
<h2>Attendance</h2>
<table>
<tr><th>Enrollment ID</th><th>Attendance Date</th><th>Status</th></tr>
{{range .Attendance}}<tr><td>{{.EnrollmentID}}</td><td>{{.AttendanceDate}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
</body>
</html>
`

// Builder renders snapshots into report documents.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder creates a report builder with the parsed document template.
func NewBuilder() *Builder {
	return &Builder{
		tmpl: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// Build renders one snapshot into a complete HTML document. The output
// depends only on the snapshot, so identical inputs produce identical
// documents.
func (b *Builder) Build(snapshot *Snapshot) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, snapshot); err != nil {
		return "", err
	}
	return buf.String(), nil
}
