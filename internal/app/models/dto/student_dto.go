package dto

// AddStudentRequest carries the seven student attributes collected by the
// add-student form. Every field is required; presence is re-checked in the
// service so the same rule holds for non-HTTP callers.
type AddStudentRequest struct {
	Roll        string `json:"roll" binding:"required" example:"103"`
	FirstName   string `json:"firstName" binding:"required" example:"Alice"`
	LastName    string `json:"lastName" binding:"required" example:"Rahman"`
	DateOfBirth string `json:"dateOfBirth" binding:"required" example:"2002-05-14"`
	Email       string `json:"email" binding:"required" example:"alice.rahman@example.com"`
	Department  string `json:"department" binding:"required" example:"CSE"`
	Batch       string `json:"batch" binding:"required" example:"Batch-3"`
}

// SearchStudentQuery is the exact-match lookup key used by the search screen.
type SearchStudentQuery struct {
	Roll       string `form:"roll" binding:"required"`
	Department string `form:"department" binding:"required"`
	Batch      string `form:"batch" binding:"required"`
}
