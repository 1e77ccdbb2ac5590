package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling begins a transaction, hands fn repositories bound to it, and
// commits or rolls back. Estimate approval runs through here so the status
// flip and the generated invoice land together or not at all.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	estimateRepo repository.EstimateRepository,
	invoiceRepo repository.InvoiceRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	estimateRepo := NewEstimateRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(estimateRepo, invoiceRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
