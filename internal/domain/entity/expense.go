package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory bookkeeping bucket for an expense.
type ExpenseCategory string

const (
	ExpenseCategoryMaterials     ExpenseCategory = "materials"
	ExpenseCategoryTools         ExpenseCategory = "tools"
	ExpenseCategoryFuel          ExpenseCategory = "fuel"
	ExpenseCategorySubcontractor ExpenseCategory = "subcontractor"
	ExpenseCategoryAdmin         ExpenseCategory = "admin"
	ExpenseCategoryOther         ExpenseCategory = "other"
)

// Expense is a cost entry, optionally tied to a project, with an optional
// uploaded receipt.
type Expense struct {
	ID            string
	ExpenseName   string
	Vendor        string
	Category      ExpenseCategory
	ExpenseDate   time.Time
	Amount        decimal.Decimal
	ProjectID     string
	ReceiptURL    string
	TaxDeductible bool
	PaidBy        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
