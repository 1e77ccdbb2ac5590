// Package billing holds the pure billing core: totals computation for
// estimates and invoices, and sequential document numbering. Nothing in
// this package touches the database or the clock; callers feed it data and
// persist the results.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

// DocumentKind selects which tax rule applies to a set of line items.
type DocumentKind string

const (
	KindEstimate DocumentKind = "estimate"
	KindInvoice  DocumentKind = "invoice"
)

// CommercialTaxRate is the fixed sales tax rate applied to commercial
// projects. Residential work is always tax-free.
var CommercialTaxRate = decimal.New(825, -4) // 0.0825

// Totals is the computed financial summary of an estimate or invoice.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxRate     decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// TaxRateFor returns the tax rate implied by the project type. The rate is
// a pure function of the type and is never stored as an independent rule.
func TaxRateFor(projectType entity.ProjectType) decimal.Decimal {
	if projectType == entity.ProjectTypeCommercial {
		return CommercialTaxRate
	}
	return decimal.Zero
}

// ComputeTotals computes subtotal, tax, and total for an ordered set of
// line items.
//
// The subtotal is the unconditional sum of quantity × unit price. The tax
// base depends on the document kind:
//
//   - estimates: the whole subtotal is taxed uniformly; per-line taxable
//     flags are ignored.
//   - invoices: only lines whose taxable flag is set (or absent, which
//     defaults to taxable) contribute, and only when the project is
//     commercial. Residential invoices yield zero tax regardless of flags.
//
// Tax is rounded to cents; the function has no error conditions, absent
// numeric fields are zero values and simply contribute nothing.
func ComputeTotals(items []entity.LineItem, isCommercial bool, kind DocumentKind) Totals {
	subtotal := decimal.Zero
	taxableBase := decimal.Zero
	for _, item := range items {
		amount := item.Amount()
		subtotal = subtotal.Add(amount)
		if kind == KindInvoice && !item.IsTaxable() {
			continue
		}
		taxableBase = taxableBase.Add(amount)
	}

	rate := decimal.Zero
	if isCommercial {
		rate = CommercialTaxRate
	}

	tax := taxableBase.Mul(rate).Round(2)
	return Totals{
		Subtotal:    subtotal,
		TaxRate:     rate,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}
}
