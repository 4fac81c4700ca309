package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir-rahman/studentinfo/internal/app/models/dto"
	"github.com/tanvir-rahman/studentinfo/internal/app/services"
	"github.com/tanvir-rahman/studentinfo/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses returns all courses; the picker on the enrollment screen is
// populated from this list.
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}
