package dto

import "time"

// AppointmentRequest create/update payload for a calendar entry.
// Times are RFC 3339.
type AppointmentRequest struct {
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	ProjectID  string    `json:"project_id"`
	ClientID   string    `json:"client_id"`
	AssignedTo []string  `json:"assigned_to"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
}

// AppointmentResponse calendar entry representation.
type AppointmentResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	ProjectID  string    `json:"project_id"`
	ClientID   string    `json:"client_id"`
	AssignedTo []string  `json:"assigned_to"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
