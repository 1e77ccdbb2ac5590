package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus lifecycle of an estimate.
//
// Transitions are forward-only: draft → sent → approved | declined.
// Approved and declined are terminal; a response link hitting a terminal
// estimate is reported back to the caller as a no-op, never re-executed.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusDeclined EstimateStatus = "declined"
)

// Terminal reports whether the status admits no further transitions.
func (s EstimateStatus) Terminal() bool {
	return s == EstimateStatusApproved || s == EstimateStatusDeclined
}

// CanTransitionTo reports whether moving from s to next is a legal
// forward-only transition.
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case EstimateStatusDraft:
		return next == EstimateStatusSent || next == EstimateStatusApproved || next == EstimateStatusDeclined
	case EstimateStatusSent:
		return next == EstimateStatusApproved || next == EstimateStatusDeclined
	default:
		return false
	}
}

// Estimate is a priced quote for project work.
//
// EstimateNumber (EST-{year}-{0000}) is assigned exactly once at creation
// from the per-year sequence and never changes afterwards. Totals are
// recomputed from the line items on every save; on estimates every line is
// taxed uniformly when the project is commercial.
type Estimate struct {
	ID             string
	EstimateNumber string
	ClientID       string
	ProjectID      string
	IssueDate      time.Time
	ExpiryDate     *time.Time
	Status         EstimateStatus
	LineItems      []LineItem
	Subtotal       decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	Notes          string
	Photos         []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
