package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo InvoiceRepository over PostgreSQL (usable with pool or tx).
// Line items live in a JSONB column, same layout as estimates.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, client_id, project_id, issue_date, due_date,
	status, line_items, subtotal, tax_rate, tax_amount, total_amount, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	var items []byte
	err := row.Scan(
		&i.ID, &i.InvoiceNumber, &i.ClientID, &i.ProjectID, &i.IssueDate, &i.DueDate,
		&i.Status, &items, &i.Subtotal, &i.TaxRate, &i.TaxAmount, &i.TotalAmount,
		&i.Notes, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &i.LineItems); err != nil {
		return nil, fmt.Errorf("decode line_items: %w", err)
	}
	return &i, nil
}

// Create persists a new invoice.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	items, err := marshalJSONB(invoice.LineItems)
	if err != nil {
		return fmt.Errorf("encode line_items: %w", err)
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.ClientID, invoice.ProjectID,
		invoice.IssueDate, invoice.DueDate, invoice.Status, items,
		invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount, invoice.TotalAmount,
		invoice.Notes, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID fetches an invoice by ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	i, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return i, nil
}

// List pages through invoices, newest first.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryInvoices(query, limit, offset)
}

// ListByProject returns all invoices on one project, newest first.
func (r *InvoiceRepo) ListByProject(projectID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE project_id = $1 ORDER BY created_at DESC`
	return r.queryInvoices(query, projectID)
}

func (r *InvoiceRepo) queryInvoices(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// ListNumbers returns every issued invoice number.
func (r *InvoiceRepo) ListNumbers() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT invoice_number FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// Update rewrites an invoice. The invoice number column is deliberately
// absent from the SET list.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	items, err := marshalJSONB(invoice.LineItems)
	if err != nil {
		return fmt.Errorf("encode line_items: %w", err)
	}
	query := `
		UPDATE invoices SET client_id = $2, project_id = $3, issue_date = $4, due_date = $5,
			status = $6, line_items = $7, subtotal = $8, tax_rate = $9, tax_amount = $10,
			total_amount = $11, notes = $12, updated_at = $13
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ClientID, invoice.ProjectID, invoice.IssueDate, invoice.DueDate,
		invoice.Status, items, invoice.Subtotal, invoice.TaxRate, invoice.TaxAmount,
		invoice.TotalAmount, invoice.Notes, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}
