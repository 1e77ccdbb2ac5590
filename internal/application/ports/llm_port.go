package ports

import (
	"context"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
)

// LLMService generates task suggestions for a project from its name and
// free-form notes.
type LLMService interface {
	SuggestTasks(ctx context.Context, projectName, notes string) ([]dto.TaskSuggestion, error)
}
