package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// EstimateRepository persistence port for estimates.
//
// ListNumbers returns every issued estimate number (all years); it exists
// so the numbering sequence can be seeded from legacy rows at startup.
type EstimateRepository interface {
	Create(estimate *entity.Estimate) error
	GetByID(id string) (*entity.Estimate, error)
	List(limit, offset int) ([]*entity.Estimate, error)
	ListByProject(projectID string) ([]*entity.Estimate, error)
	ListNumbers() ([]string, error)
	Update(estimate *entity.Estimate) error
}
