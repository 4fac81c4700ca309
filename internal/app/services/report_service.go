package services

import (
	"context"

	"github.com/tanvir-rahman/studentinfo/internal/app/report"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
)

// ReportService builds and exports the whole-store report document.
type ReportService struct {
	repos    *repositories.Repositories
	builder  *report.Builder
	exporter *report.Exporter
}

// NewReportService creates a new report service instance
func NewReportService(repos *repositories.Repositories, exporter *report.Exporter) *ReportService {
	return &ReportService{
		repos:    repos,
		builder:  report.NewBuilder(),
		exporter: exporter,
	}
}

// BuildReport reads the full contents of all five tables and renders them
// into one self-contained HTML document. A failure reading any table aborts
// the whole report.
func (s *ReportService) BuildReport(ctx context.Context) (string, error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}

	document, err := s.builder.Build(snapshot)
	if err != nil {
		return "", apperrors.NewExportError(err, "failed to render report document")
	}

	return document, nil
}

// ExportReport builds the report document and hands it to the export
// facility, returning the written file path. An export failure leaves the
// fetched data untouched and surfaces as an export error.
func (s *ReportService) ExportReport(ctx context.Context) (string, error) {
	document, err := s.BuildReport(ctx)
	if err != nil {
		return "", err
	}

	path, err := s.exporter.Export(document)
	if err != nil {
		return "", apperrors.NewExportError(err, "failed to export report document")
	}

	return path, nil
}

func (s *ReportService) snapshot(ctx context.Context) (*report.Snapshot, error) {
	students, err := s.repos.StudentRepository.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to read students for report")
	}

	courses, err := s.repos.CourseRepository.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to read courses for report")
	}

	enrollments, err := s.repos.EnrollmentRepository.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to read enrollments for report")
	}

	grades, err := s.repos.GradeRepository.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to read grades for report")
	}

	attendance, err := s.repos.AttendanceRepository.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to read attendance for report")
	}

	return &report.Snapshot{
		Students:    students,
		Courses:     courses,
		Enrollments: enrollments,
		Grades:      grades,
		Attendance:  attendance,
	}, nil
}
