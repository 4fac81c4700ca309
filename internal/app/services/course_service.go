package services

import (
	"context"

	"github.com/tanvir-rahman/studentinfo/internal/app/models"
	"github.com/tanvir-rahman/studentinfo/internal/app/repositories"
	"github.com/tanvir-rahman/studentinfo/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(repos *repositories.Repositories) *CourseService {
	return &CourseService{
		courseRepo: repos.CourseRepository,
	}
}

// ListCourses retrieves all courses
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to list courses")
	}
	return courses, nil
}
