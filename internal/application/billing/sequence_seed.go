package billing

import (
	domainbilling "github.com/cooltechhq/hvac-ops-api/internal/domain/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// SeedSequences adopts document numbers issued before the counter table
// existed: it scans every stored estimate and invoice number, computes the
// highest sequence per kind for the given year, and seeds the counters.
// Existing counters are left untouched, so running this on every startup
// is harmless.
func SeedSequences(
	estimateRepo repository.EstimateRepository,
	invoiceRepo repository.InvoiceRepository,
	seqRepo repository.SequenceRepository,
	year int,
) error {
	estNumbers, err := estimateRepo.ListNumbers()
	if err != nil {
		return err
	}
	if max := domainbilling.MaxSequence(estNumbers, domainbilling.PrefixEstimate, year); max > 0 {
		if err := seqRepo.Seed(string(domainbilling.KindEstimate), year, max); err != nil {
			return err
		}
	}
	invNumbers, err := invoiceRepo.ListNumbers()
	if err != nil {
		return err
	}
	if max := domainbilling.MaxSequence(invNumbers, domainbilling.PrefixInvoice, year); max > 0 {
		if err := seqRepo.Seed(string(domainbilling.KindInvoice), year, max); err != nil {
			return err
		}
	}
	return nil
}
