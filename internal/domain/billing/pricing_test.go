package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

func item(qty, price float64) entity.LineItem {
	return entity.LineItem{
		Quantity:  decimal.NewFromFloat(qty),
		UnitPrice: decimal.NewFromFloat(price),
	}
}

func taxableItem(qty, price float64, taxable bool) entity.LineItem {
	li := item(qty, price)
	li.Taxable = &taxable
	return li
}

func TestComputeTotals_CommercialEstimate(t *testing.T) {
	// Commercial estimates tax the full subtotal at 8.25%.
	items := []entity.LineItem{item(1, 1000)}
	totals := billing.ComputeTotals(items, true, billing.KindEstimate)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(1000)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(82.5)), "tax %s", totals.TaxAmount)
	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromFloat(1082.5)), "total %s", totals.TotalAmount)
	assert.True(t, totals.TaxRate.Equal(billing.CommercialTaxRate))
}

func TestComputeTotals_ResidentialEstimate_TaxFree(t *testing.T) {
	items := []entity.LineItem{item(2, 250), item(1, 99.99)}
	totals := billing.ComputeTotals(items, false, billing.KindEstimate)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(599.99)))
	assert.True(t, totals.TaxAmount.IsZero(), "residential work is never taxed")
	assert.True(t, totals.TotalAmount.Equal(totals.Subtotal))
	assert.True(t, totals.TaxRate.IsZero())
}

func TestComputeTotals_CommercialInvoice_PerItemTaxable(t *testing.T) {
	// Only the taxable line (200) enters the tax base: 200 × 0.0825 = 16.50.
	items := []entity.LineItem{
		taxableItem(1, 100, false),
		taxableItem(1, 200, true),
	}
	totals := billing.ComputeTotals(items, true, billing.KindInvoice)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(300)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(16.5)), "tax %s", totals.TaxAmount)
	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromFloat(316.5)), "total %s", totals.TotalAmount)
}

func TestComputeTotals_ResidentialInvoice_AlwaysZeroTax(t *testing.T) {
	// Even all-taxable lines yield zero tax on a residential project.
	items := []entity.LineItem{
		taxableItem(1, 100, true),
		taxableItem(3, 50, true),
	}
	totals := billing.ComputeTotals(items, false, billing.KindInvoice)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(250)))
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromInt(250)))
}

func TestComputeTotals_InvoiceTaxableDefaultsTrue(t *testing.T) {
	// A line without an explicit flag counts as taxable.
	items := []entity.LineItem{item(1, 200)}
	totals := billing.ComputeTotals(items, true, billing.KindInvoice)

	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(16.5)), "tax %s", totals.TaxAmount)
}

func TestComputeTotals_EstimateIgnoresTaxableFlags(t *testing.T) {
	// Estimates have no per-line opt-out: the flag is invoice-only.
	items := []entity.LineItem{
		taxableItem(1, 100, false),
		taxableItem(1, 200, true),
	}
	totals := billing.ComputeTotals(items, true, billing.KindEstimate)

	// 300 × 0.0825 = 24.75, the full subtotal is the base.
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(24.75)), "tax %s", totals.TaxAmount)
}

func TestComputeTotals_SubtotalOrderIndependent(t *testing.T) {
	a := []entity.LineItem{item(1, 10), item(2, 20), item(3, 0.07)}
	b := []entity.LineItem{item(3, 0.07), item(1, 10), item(2, 20)}

	ta := billing.ComputeTotals(a, true, billing.KindEstimate)
	tb := billing.ComputeTotals(b, true, billing.KindEstimate)

	assert.True(t, ta.Subtotal.Equal(tb.Subtotal))
	assert.True(t, ta.TotalAmount.Equal(tb.TotalAmount))
}

func TestComputeTotals_EmptyAndZeroItems(t *testing.T) {
	totals := billing.ComputeTotals(nil, true, billing.KindInvoice)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TotalAmount.IsZero())

	// Zero-value quantity/price contribute nothing rather than erroring.
	totals = billing.ComputeTotals([]entity.LineItem{{Description: "tbd"}}, true, billing.KindEstimate)
	assert.True(t, totals.TotalAmount.IsZero())
}

func TestComputeTotals_TaxRoundedToCents(t *testing.T) {
	// 123.45 × 0.0825 = 10.184625 → 10.18
	items := []entity.LineItem{item(1, 123.45)}
	totals := billing.ComputeTotals(items, true, billing.KindEstimate)

	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(10.18)), "tax %s", totals.TaxAmount)
	assert.True(t, totals.TotalAmount.Equal(decimal.NewFromFloat(133.63)), "total %s", totals.TotalAmount)
}

func TestTaxRateFor(t *testing.T) {
	assert.True(t, billing.TaxRateFor(entity.ProjectTypeCommercial).Equal(billing.CommercialTaxRate))
	assert.True(t, billing.TaxRateFor(entity.ProjectTypeResidential).IsZero())
	assert.True(t, billing.TaxRateFor("").IsZero(), "unknown types default to tax-free")
}
