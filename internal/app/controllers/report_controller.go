package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanvir-rahman/studentinfo/internal/app/models/dto"
	"github.com/tanvir-rahman/studentinfo/internal/app/services"
	"github.com/tanvir-rahman/studentinfo/internal/middleware"
)

// ReportController handles report generation and export
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetReport renders the whole-store report and returns the HTML document
// inline.
func (c *ReportController) GetReport(ctx *gin.Context) {
	document, err := c.reportService.BuildReport(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}

// ExportReport renders the report, writes it to the export directory and
// returns the file path.
func (c *ReportController) ExportReport(ctx *gin.Context) {
	path, err := c.reportService.ExportReport(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ExportReportResponse{Path: path}))
}
