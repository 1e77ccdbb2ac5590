package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// TaskRepository persistence port for tasks.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	List(limit, offset int) ([]*entity.Task, error)
	ListByProject(projectID string) ([]*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id string) error
}
