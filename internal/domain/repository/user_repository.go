package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// UserRepository persistence port for application accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
