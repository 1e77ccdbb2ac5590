package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus billing state of an invoice. Unlike estimates there is no
// enforced transition order; the office moves invoices between states as
// payments come in.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ValidInvoiceStatus reports whether s is one of the known states.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice is a bill for project work.
//
// InvoiceNumber (INV-{year}-{0000}) is assigned once at creation. Tax on
// invoices is per line: only items flagged taxable contribute to the tax
// base, and only on commercial projects; residential invoices carry zero
// tax regardless of the flags.
//
// Invoices generated from an approved estimate carry the estimate's line
// items and totals verbatim; they are not recomputed under the invoice tax
// rule.
type Invoice struct {
	ID            string
	InvoiceNumber string
	ClientID      string
	ProjectID     string
	IssueDate     time.Time
	DueDate       *time.Time
	Status        InvoiceStatus
	LineItems     []LineItem
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
