package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// ProjectRepository persistence port for projects.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	ListByClient(clientID string) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}
