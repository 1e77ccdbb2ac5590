package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// ExpenseRepository persistence port for expenses.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(limit, offset int) ([]*entity.Expense, error)
	ListByProject(projectID string) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
