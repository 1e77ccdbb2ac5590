package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest create/update payload for an expense.
type ExpenseRequest struct {
	ExpenseName   string          `json:"expense_name"`
	Vendor        string          `json:"vendor"`
	Category      string          `json:"category"`
	ExpenseDate   string          `json:"expense_date"`
	Amount        decimal.Decimal `json:"amount"`
	ProjectID     string          `json:"project_id"`
	ReceiptURL    string          `json:"receipt_url"`
	TaxDeductible bool            `json:"tax_deductible"`
	PaidBy        string          `json:"paid_by"`
	Notes         string          `json:"notes"`
}

// ExpenseResponse expense representation.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	ExpenseName   string          `json:"expense_name"`
	Vendor        string          `json:"vendor"`
	Category      string          `json:"category"`
	ExpenseDate   time.Time       `json:"expense_date"`
	Amount        decimal.Decimal `json:"amount"`
	ProjectID     string          `json:"project_id"`
	ReceiptURL    string          `json:"receipt_url"`
	TaxDeductible bool            `json:"tax_deductible"`
	PaidBy        string          `json:"paid_by"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
