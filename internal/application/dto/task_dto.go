package dto

import "time"

// TaskRequest create/update payload for a task.
type TaskRequest struct {
	TaskTitle  string `json:"task_title"`
	ProjectID  string `json:"project_id"`
	AssignedTo string `json:"assigned_to"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	DueDate    string `json:"due_date"`
	Notes      string `json:"notes"`
}

// TaskResponse task representation.
type TaskResponse struct {
	ID         string     `json:"id"`
	TaskTitle  string     `json:"task_title"`
	ProjectID  string     `json:"project_id"`
	AssignedTo string     `json:"assigned_to"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
