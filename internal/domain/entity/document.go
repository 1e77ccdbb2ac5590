package entity

import "time"

// Document is an uploaded file (permit, photo, manual, contract) attached
// to a project. FileURL points at the served upload location.
type Document struct {
	ID           string
	DocumentName string
	ProjectID    string
	Category     string
	FileURL      string
	UploadedBy   string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
