package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// ClientRepository persistence port for clients.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
