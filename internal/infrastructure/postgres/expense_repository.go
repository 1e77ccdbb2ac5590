package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo ExpenseRepository over PostgreSQL (usable with pool or tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the adapter. Pass a pool or tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, expense_name, vendor, category, expense_date, amount,
	COALESCE(project_id, ''), receipt_url, tax_deductible, paid_by, notes, created_at, updated_at`

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(
		&e.ID, &e.ExpenseName, &e.Vendor, &e.Category, &e.ExpenseDate, &e.Amount,
		&e.ProjectID, &e.ReceiptURL, &e.TaxDeductible, &e.PaidBy, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persists a new expense. ProjectID is optional.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, expense_name, vendor, category, expense_date, amount,
			project_id, receipt_url, tax_deductible, paid_by, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.ExpenseName, expense.Vendor, expense.Category, expense.ExpenseDate,
		expense.Amount, nullIfEmpty(expense.ProjectID), expense.ReceiptURL, expense.TaxDeductible,
		expense.PaidBy, expense.Notes, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID fetches an expense by ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := scanExpense(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// List pages through expenses, most recent spend first.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY expense_date DESC LIMIT $1 OFFSET $2`
	return r.queryExpenses(query, limit, offset)
}

// ListByProject returns all expenses charged to one project.
func (r *ExpenseRepo) ListByProject(projectID string) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE project_id = $1 ORDER BY expense_date DESC`
	return r.queryExpenses(query, projectID)
}

func (r *ExpenseRepo) queryExpenses(query string, args ...any) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update rewrites an expense.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses SET expense_name = $2, vendor = $3, category = $4, expense_date = $5,
			amount = $6, project_id = $7, receipt_url = $8, tax_deductible = $9,
			paid_by = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.ExpenseName, expense.Vendor, expense.Category, expense.ExpenseDate,
		expense.Amount, nullIfEmpty(expense.ProjectID), expense.ReceiptURL, expense.TaxDeductible,
		expense.PaidBy, expense.Notes, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete removes an expense by ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
