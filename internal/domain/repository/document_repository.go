package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// DocumentRepository persistence port for uploaded documents.
type DocumentRepository interface {
	Create(document *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	List(limit, offset int) ([]*entity.Document, error)
	ListByProject(projectID string) ([]*entity.Document, error)
	Delete(id string) error
}
