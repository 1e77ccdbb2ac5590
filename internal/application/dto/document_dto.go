package dto

import "time"

// DocumentResponse uploaded document representation.
type DocumentResponse struct {
	ID           string    `json:"id"`
	DocumentName string    `json:"document_name"`
	ProjectID    string    `json:"project_id"`
	Category     string    `json:"category"`
	FileURL      string    `json:"file_url"`
	UploadedBy   string    `json:"uploaded_by"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
