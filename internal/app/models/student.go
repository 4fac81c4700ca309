package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64  `json:"id" db:"id" example:"1"`                        // Unique identifier for the student record
	Roll        string `json:"roll" db:"roll" example:"101"`                  // Roll number shown to the user; search key together with department and batch
	FirstName   string `json:"firstName" db:"first_name" example:"John"`      // Student's first name
	LastName    string `json:"lastName" db:"last_name" example:"Doe"`         // Student's last name
	DateOfBirth string `json:"dateOfBirth" db:"date_of_birth" example:"2000-01-01"` // ISO date, YYYY-MM-DD
	Email       string `json:"email" db:"email" example:"john.doe@example.com"`
	Department  string `json:"department" db:"department" example:"CSE"`
	Batch       string `json:"batch" db:"batch" example:"Batch-1"`
}
