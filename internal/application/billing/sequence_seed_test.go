package billing_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

func TestSeedSequences_AdoptsExistingNumbers(t *testing.T) {
	estRepo := newFakeEstimateRepo()
	invRepo := newFakeInvoiceRepo()
	seqRepo := newFakeSequenceRepo()
	year := time.Now().Year()

	// Documents numbered before the counter table existed.
	require.NoError(t, estRepo.Create(&entity.Estimate{
		ID: "e1", EstimateNumber: fmt.Sprintf("EST-%d-0007", year),
	}))
	require.NoError(t, estRepo.Create(&entity.Estimate{
		ID: "e2", EstimateNumber: fmt.Sprintf("EST-%d-0003", year),
	}))
	require.NoError(t, invRepo.Create(&entity.Invoice{
		ID: "i1", InvoiceNumber: fmt.Sprintf("INV-%d-0011", year),
	}))

	require.NoError(t, appbilling.SeedSequences(estRepo, invRepo, seqRepo, year))

	next, err := seqRepo.Next("estimate", year)
	require.NoError(t, err)
	assert.Equal(t, 8, next, "estimate counter must continue past the highest stored number")

	next, err = seqRepo.Next("invoice", year)
	require.NoError(t, err)
	assert.Equal(t, 12, next)
}

func TestSeedSequences_EmptyTablesLeaveCountersUntouched(t *testing.T) {
	seqRepo := newFakeSequenceRepo()
	year := time.Now().Year()

	require.NoError(t, appbilling.SeedSequences(newFakeEstimateRepo(), newFakeInvoiceRepo(), seqRepo, year))

	next, err := seqRepo.Next("estimate", year)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "fresh install starts at 1")
}
