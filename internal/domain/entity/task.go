package entity

import "time"

// TaskStatus work item lifecycle.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "to_do"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusComplete   TaskStatus = "complete"
)

// TaskPriority scheduling priority.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task is a unit of work on a project, assignable to a technician.
type Task struct {
	ID         string
	TaskTitle  string
	ProjectID  string
	AssignedTo string
	Status     TaskStatus
	Priority   TaskPriority
	DueDate    *time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
