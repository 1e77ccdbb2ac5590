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

var _ repository.EstimateRepository = (*EstimateRepo)(nil)

// EstimateRepo EstimateRepository over PostgreSQL (usable with pool or tx).
// Line items and photos live in JSONB columns: items have no identity
// outside their document, so a child table would only add joins.
type EstimateRepo struct {
	q Querier
}

// NewEstimateRepository builds the adapter. Pass a pool or tx (Querier).
func NewEstimateRepository(q Querier) *EstimateRepo {
	return &EstimateRepo{q: q}
}

const estimateColumns = `id, estimate_number, client_id, project_id, issue_date, expiry_date,
	status, line_items, subtotal, tax_rate, tax_amount, total_amount, notes, photos, created_at, updated_at`

func marshalJSONB(v any) ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v)
}

func scanEstimate(row pgx.Row) (*entity.Estimate, error) {
	var e entity.Estimate
	var items, photos []byte
	err := row.Scan(
		&e.ID, &e.EstimateNumber, &e.ClientID, &e.ProjectID, &e.IssueDate, &e.ExpiryDate,
		&e.Status, &items, &e.Subtotal, &e.TaxRate, &e.TaxAmount, &e.TotalAmount,
		&e.Notes, &photos, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &e.LineItems); err != nil {
		return nil, fmt.Errorf("decode line_items: %w", err)
	}
	if err := json.Unmarshal(photos, &e.Photos); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	return &e, nil
}

// Create persists a new estimate.
func (r *EstimateRepo) Create(estimate *entity.Estimate) error {
	items, err := marshalJSONB(estimate.LineItems)
	if err != nil {
		return fmt.Errorf("encode line_items: %w", err)
	}
	photos, err := marshalJSONB(estimate.Photos)
	if err != nil {
		return fmt.Errorf("encode photos: %w", err)
	}
	query := `
		INSERT INTO estimates (` + estimateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.q.Exec(context.Background(), query,
		estimate.ID, estimate.EstimateNumber, estimate.ClientID, estimate.ProjectID,
		estimate.IssueDate, estimate.ExpiryDate, estimate.Status, items,
		estimate.Subtotal, estimate.TaxRate, estimate.TaxAmount, estimate.TotalAmount,
		estimate.Notes, photos, estimate.CreatedAt, estimate.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert estimate: %w", err)
	}
	return nil
}

// GetByID fetches an estimate by ID.
func (r *EstimateRepo) GetByID(id string) (*entity.Estimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM estimates WHERE id = $1`
	e, err := scanEstimate(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estimate: %w", err)
	}
	return e, nil
}

// List pages through estimates, newest first.
func (r *EstimateRepo) List(limit, offset int) ([]*entity.Estimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM estimates ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryEstimates(query, limit, offset)
}

// ListByProject returns all estimates on one project, newest first.
func (r *EstimateRepo) ListByProject(projectID string) ([]*entity.Estimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM estimates WHERE project_id = $1 ORDER BY created_at DESC`
	return r.queryEstimates(query, projectID)
}

func (r *EstimateRepo) queryEstimates(query string, args ...any) ([]*entity.Estimate, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estimate
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListNumbers returns every issued estimate number.
func (r *EstimateRepo) ListNumbers() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT estimate_number FROM estimates`)
	if err != nil {
		return nil, fmt.Errorf("list estimate numbers: %w", err)
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan estimate number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// Update rewrites an estimate. The estimate number column is deliberately
// absent from the SET list.
func (r *EstimateRepo) Update(estimate *entity.Estimate) error {
	items, err := marshalJSONB(estimate.LineItems)
	if err != nil {
		return fmt.Errorf("encode line_items: %w", err)
	}
	photos, err := marshalJSONB(estimate.Photos)
	if err != nil {
		return fmt.Errorf("encode photos: %w", err)
	}
	query := `
		UPDATE estimates SET client_id = $2, project_id = $3, issue_date = $4, expiry_date = $5,
			status = $6, line_items = $7, subtotal = $8, tax_rate = $9, tax_amount = $10,
			total_amount = $11, notes = $12, photos = $13, updated_at = $14
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		estimate.ID, estimate.ClientID, estimate.ProjectID, estimate.IssueDate, estimate.ExpiryDate,
		estimate.Status, items, estimate.Subtotal, estimate.TaxRate, estimate.TaxAmount,
		estimate.TotalAmount, estimate.Notes, photos, estimate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estimate: %w", err)
	}
	return nil
}
