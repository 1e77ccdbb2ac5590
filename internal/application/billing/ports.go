package billing

import (
	"context"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// BillingTxRunner runs a function inside one database transaction with
// transaction-bound repositories. Approving an estimate flips its status
// and creates the invoice through the same transaction, so a failure on
// either side rolls back both.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		estimateRepo repository.EstimateRepository,
		invoiceRepo repository.InvoiceRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// EstimatePDFGenerator renders the printable estimate.
type EstimatePDFGenerator interface {
	GenerateEstimatePDF(ctx context.Context, est *entity.Estimate, client *entity.Client, project *entity.Project) ([]byte, error)
}

// InvoicePDFGenerator renders the printable invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, client *entity.Client, project *entity.Project) ([]byte, error)
}
