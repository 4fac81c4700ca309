package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir-rahman/studentinfo/internal/app/models/dto"
	"github.com/tanvir-rahman/studentinfo/internal/app/services"
	"github.com/tanvir-rahman/studentinfo/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// ListEnrollments returns all enrollments. With ?annotated=true each row is
// annotated with the resolved student and course names.
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	if ctx.Query("annotated") == "true" {
		annotated, err := c.enrollmentService.ListAnnotated(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(annotated))
		return
	}

	enrollments, err := c.enrollmentService.ListEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// Enroll creates a new enrollment for a selected student and course.
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}
