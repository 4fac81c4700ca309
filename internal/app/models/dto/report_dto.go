package dto

// ExportReportResponse returns the location of a written report document.
type ExportReportResponse struct {
	Path string `json:"path" example:"reports/StudentInformationSystemReport-9f1c2d3e.html"`
}
