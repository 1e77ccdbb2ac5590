package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// TaskUseCase CRUD for tasks.
type TaskUseCase struct {
	repo        repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskUseCase builds the use case.
func NewTaskUseCase(repo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, projectRepo: projectRepo}
}

func validTaskStatus(s entity.TaskStatus) bool {
	switch s {
	case entity.TaskStatusToDo, entity.TaskStatusInProgress, entity.TaskStatusComplete:
		return true
	}
	return false
}

func validTaskPriority(p entity.TaskPriority) bool {
	switch p {
	case entity.TaskPriorityLow, entity.TaskPriorityMedium, entity.TaskPriorityHigh, entity.TaskPriorityUrgent:
		return true
	}
	return false
}

// Create creates a task on a project.
func (uc *TaskUseCase) Create(in dto.TaskRequest) (*dto.TaskResponse, error) {
	if in.TaskTitle == "" || in.ProjectID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrInvalidInput
	}
	status := entity.TaskStatusToDo
	if in.Status != "" {
		status = entity.TaskStatus(in.Status)
		if !validTaskStatus(status) {
			return nil, domain.ErrInvalidInput
		}
	}
	priority := entity.TaskPriorityMedium
	if in.Priority != "" {
		priority = entity.TaskPriority(in.Priority)
		if !validTaskPriority(priority) {
			return nil, domain.ErrInvalidInput
		}
	}
	dueDate, err := parseDatePtr(in.DueDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &entity.Task{
		ID:         uuid.New().String(),
		TaskTitle:  in.TaskTitle,
		ProjectID:  in.ProjectID,
		AssignedTo: in.AssignedTo,
		Status:     status,
		Priority:   priority,
		DueDate:    dueDate,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID fetches one task.
func (uc *TaskUseCase) GetByID(id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return toTaskResponse(task), nil
}

// List pages through tasks.
func (uc *TaskUseCase) List(page dto.PageRequest) ([]*dto.TaskResponse, error) {
	tasks, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// ListByProject returns all tasks on one project.
func (uc *TaskUseCase) ListByProject(projectID string) ([]*dto.TaskResponse, error) {
	tasks, err := uc.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Update rewrites a task's fields.
func (uc *TaskUseCase) Update(id string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if in.TaskTitle != "" {
		task.TaskTitle = in.TaskTitle
	}
	if in.ProjectID != "" {
		task.ProjectID = in.ProjectID
	}
	task.AssignedTo = in.AssignedTo
	if in.Status != "" {
		status := entity.TaskStatus(in.Status)
		if !validTaskStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		task.Status = status
	}
	if in.Priority != "" {
		priority := entity.TaskPriority(in.Priority)
		if !validTaskPriority(priority) {
			return nil, domain.ErrInvalidInput
		}
		task.Priority = priority
	}
	if in.DueDate != "" {
		t, err := parseDatePtr(in.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = t
	}
	task.Notes = in.Notes
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete removes a task.
func (uc *TaskUseCase) Delete(id string) error {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:         t.ID,
		TaskTitle:  t.TaskTitle,
		ProjectID:  t.ProjectID,
		AssignedTo: t.AssignedTo,
		Status:     string(t.Status),
		Priority:   string(t.Priority),
		DueDate:    t.DueDate,
		Notes:      t.Notes,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
