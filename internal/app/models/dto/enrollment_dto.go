package dto

// EnrollRequest enrolls an existing student in an existing course. The IDs
// come from pickers over the list endpoints, so only positivity is checked
// here; the foreign keys catch dangling references.
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0" example:"1"`
	CourseID  int64 `json:"courseId" binding:"required,gt=0" example:"2"`
}
