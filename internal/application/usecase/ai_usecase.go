package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// AIUseCase AI-assisted task suggestions. Each LLM call runs under a
// 30-second timeout so external latency cannot pin server goroutines.
type AIUseCase struct {
	llm         ports.LLMService
	projectRepo repository.ProjectRepository
}

// NewAIUseCase builds the use case.
func NewAIUseCase(llm ports.LLMService, projectRepo repository.ProjectRepository) *AIUseCase {
	return &AIUseCase{llm: llm, projectRepo: projectRepo}
}

// SuggestTasks asks the model for a task breakdown of the project. Notes
// from the request are appended to the project's stored notes.
func (uc *AIUseCase) SuggestTasks(ctx context.Context, in dto.SuggestTasksRequest) ([]dto.TaskSuggestion, error) {
	if in.ProjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	notes := project.Notes
	if in.Notes != "" {
		if notes != "" {
			notes += "\n"
		}
		notes += in.Notes
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	suggestions, err := uc.llm.SuggestTasks(ctx, project.ProjectName, notes)
	if err != nil {
		return nil, fmt.Errorf("ai suggestions: %w", err)
	}
	return suggestions, nil
}
