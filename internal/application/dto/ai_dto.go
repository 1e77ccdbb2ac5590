package dto

// SuggestTasksRequest input for AI task suggestions on a project.
type SuggestTasksRequest struct {
	ProjectID string `json:"project_id"`
	Notes     string `json:"notes"`
}

// TaskSuggestion one proposed task returned by the model.
type TaskSuggestion struct {
	TaskTitle string `json:"task_title"`
	Notes     string `json:"notes"`
}
