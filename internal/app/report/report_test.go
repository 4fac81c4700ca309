package report_test

import (
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/app/report"
)

func strPtr(s string) *string { return &s }

func sampleSnapshot() *report.Snapshot {
	return &report.Snapshot{
		Students: []*models.Student{
			{ID: 1, Roll: "101", FirstName: "John", LastName: "Doe", DateOfBirth: "2000-01-01", Email: "john.doe@example.com", Department: "CSE", Batch: "Batch-1"},
			{ID: 2, Roll: "102", FirstName: "Jane", LastName: "Smith", DateOfBirth: "2001-02-01", Email: "jane.smith@example.com", Department: "EEE", Batch: "Batch-2"},
		},
		Courses: []*models.Course{
			{ID: 1, Name: "Mathematics", Description: strPtr("Introduction to Algebra and Calculus")},
			{ID: 2, Name: "Physics", Description: strPtr("Fundamentals of Mechanics and Thermodynamics")},
		},
		Enrollments: []*models.Enrollment{
			{ID: 1, StudentID: 1, CourseID: 1, EnrollmentDate: "2024-01-01"},
			{ID: 2, StudentID: 2, CourseID: 2, EnrollmentDate: "2024-01-01"},
		},
		Grades: []*models.Grade{
			{ID: 1, EnrollmentID: 1, Grade: "A"},
			{ID: 2, EnrollmentID: 2, Grade: "B"},
		},
		Attendance: []*models.Attendance{
			{ID: 1, EnrollmentID: 1, AttendanceDate: "2024-01-10", Status: models.AttendancePresent},
			{ID: 2, EnrollmentID: 2, AttendanceDate: "2024-01-10", Status: models.AttendanceAbsent},
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	builder := report.NewBuilder()

	document, err := builder.Build(sampleSnapshot())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "report", []byte(document))
}

func TestBuilder_Build_EmptySnapshot(t *testing.T) {
	builder := report.NewBuilder()

	document, err := builder.Build(&report.Snapshot{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(document, "<html>"))
	assert.Contains(t, document, "<h2>Students</h2>")
	assert.Contains(t, document, "<h2>Attendance</h2>")
	assert.NotContains(t, document, "<td>")
}

func TestBuilder_Build_EscapesMarkup(t *testing.T) {
	builder := report.NewBuilder()

	snapshot := &report.Snapshot{
		Students: []*models.Student{
			{ID: 1, Roll: "<script>", FirstName: "John", LastName: "Doe", Department: "CSE", Batch: "Batch-1"},
		},
	}

	document, err := builder.Build(snapshot)
	require.NoError(t, err)
	assert.NotContains(t, document, "<script>")
	assert.Contains(t, document, "&lt;script&gt;")
}

func TestExporter_Export(t *testing.T) {
	dir := t.TempDir()
	exporter, err := report.NewExporter(dir)
	require.NoError(t, err)

	builder := report.NewBuilder()
	document, err := builder.Build(sampleSnapshot())
	require.NoError(t, err)

	path, err := exporter.Export(document)
	require.NoError(t, err)
	assert.Contains(t, path, "StudentInformationSystemReport-")
	assert.True(t, strings.HasSuffix(path, ".html"))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, document, string(written))
}

func TestExporter_Export_UniqueNames(t *testing.T) {
	exporter, err := report.NewExporter(t.TempDir())
	require.NoError(t, err)

	first, err := exporter.Export("<html></html>")
	require.NoError(t, err)
	second, err := exporter.Export("<html></html>")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
