package models

// Course represents a course students can enroll in.
type Course struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
}
