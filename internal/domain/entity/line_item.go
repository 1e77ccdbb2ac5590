package entity

import "github.com/shopspring/decimal"

// LineItem is one priced line on an estimate or invoice. It has no identity
// of its own: items are owned by their containing document, ordered by
// position, and copied by value when an estimate becomes an invoice.
//
// Taxable only matters on invoices; nil means taxable (the default). On
// estimates the flag is ignored entirely.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Taxable     *bool           `json:"taxable,omitempty"`
}

// Amount returns quantity × unit price. Zero-value fields contribute zero.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// IsTaxable reports whether the line participates in the invoice tax base.
// Absent flag defaults to true.
func (li LineItem) IsTaxable() bool {
	return li.Taxable == nil || *li.Taxable
}
