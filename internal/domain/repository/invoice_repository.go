package repository

import "github.com/cooltechhq/hvac-ops-api/internal/domain/entity"

// InvoiceRepository persistence port for invoices.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	ListByProject(projectID string) ([]*entity.Invoice, error)
	ListNumbers() ([]string, error)
	Update(invoice *entity.Invoice) error
}
