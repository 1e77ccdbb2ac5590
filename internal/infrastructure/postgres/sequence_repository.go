package postgres

import (
	"context"
	"fmt"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo SequenceRepository over PostgreSQL (usable with pool or tx).
// One row per (kind, year); the upsert increments and returns the counter
// in a single statement, so concurrent callers always see distinct values.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository builds the adapter. Pass a pool or tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next atomically increments and returns the counter for (kind, year),
// creating the row at 1 if absent.
func (r *SequenceRepo) Next(kind string, year int) (int, error) {
	query := `
		INSERT INTO document_sequences (kind, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (kind, year)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`
	var value int
	if err := r.q.QueryRow(context.Background(), query, kind, year).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %s/%d: %w", kind, year, err)
	}
	return value, nil
}

// Seed inserts the counter at lastValue unless a row already exists.
func (r *SequenceRepo) Seed(kind string, year, lastValue int) error {
	query := `
		INSERT INTO document_sequences (kind, year, last_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (kind, year) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), query, kind, year, lastValue); err != nil {
		return fmt.Errorf("seed sequence %s/%d: %w", kind, year, err)
	}
	return nil
}
