package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir-rahman/studentinfo/internal/app/models/dto"
	"github.com/tanvir-rahman/studentinfo/internal/app/services"
	"github.com/tanvir-rahman/studentinfo/internal/middleware"
)

// RecordController handles the grade and attendance list screens.
type RecordController struct {
	gradeService      *services.GradeService
	attendanceService *services.AttendanceService
}

// NewRecordController creates a new RecordController
func NewRecordController(gradeService *services.GradeService, attendanceService *services.AttendanceService) *RecordController {
	return &RecordController{
		gradeService:      gradeService,
		attendanceService: attendanceService,
	}
}

// ListGrades returns all grades. With ?annotated=true each row carries the
// resolved student name.
func (c *RecordController) ListGrades(ctx *gin.Context) {
	if ctx.Query("annotated") == "true" {
		annotated, err := c.gradeService.ListAnnotated(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(annotated))
		return
	}

	grades, err := c.gradeService.ListGrades(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// ListAttendance returns all attendance records. With ?annotated=true each
// row carries the resolved student name.
func (c *RecordController) ListAttendance(ctx *gin.Context) {
	if ctx.Query("annotated") == "true" {
		annotated, err := c.attendanceService.ListAnnotated(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(annotated))
		return
	}

	records, err := c.attendanceService.ListAttendance(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}
