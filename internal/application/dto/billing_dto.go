package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

// EstimateRequest create/update payload for an estimate. Totals are never
// accepted from the client; they are computed server-side from the line
// items and the project type.
type EstimateRequest struct {
	ClientID   string            `json:"client_id"`
	ProjectID  string            `json:"project_id"`
	IssueDate  string            `json:"issue_date"`
	ExpiryDate string            `json:"expiry_date"`
	Status     string            `json:"status"`
	LineItems  []entity.LineItem `json:"line_items"`
	Notes      string            `json:"notes"`
	Photos     []string          `json:"photos"`
}

// EstimateResponse estimate representation.
type EstimateResponse struct {
	ID             string            `json:"id"`
	EstimateNumber string            `json:"estimate_number"`
	ClientID       string            `json:"client_id"`
	ProjectID      string            `json:"project_id"`
	IssueDate      time.Time         `json:"issue_date"`
	ExpiryDate     *time.Time        `json:"expiry_date,omitempty"`
	Status         string            `json:"status"`
	LineItems      []entity.LineItem `json:"line_items"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	TaxRate        decimal.Decimal   `json:"tax_rate"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	Notes          string            `json:"notes"`
	Photos         []string          `json:"photos"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// InvoiceRequest create/update payload for an invoice.
type InvoiceRequest struct {
	ClientID  string            `json:"client_id"`
	ProjectID string            `json:"project_id"`
	IssueDate string            `json:"issue_date"`
	DueDate   string            `json:"due_date"`
	Status    string            `json:"status"`
	LineItems []entity.LineItem `json:"line_items"`
	Notes     string            `json:"notes"`
}

// InvoiceResponse invoice representation.
type InvoiceResponse struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoice_number"`
	ClientID      string            `json:"client_id"`
	ProjectID     string            `json:"project_id"`
	IssueDate     time.Time         `json:"issue_date"`
	DueDate       *time.Time        `json:"due_date,omitempty"`
	Status        string            `json:"status"`
	LineItems     []entity.LineItem `json:"line_items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	TaxRate       decimal.Decimal   `json:"tax_rate"`
	TaxAmount     decimal.Decimal   `json:"tax_amount"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Notes         string            `json:"notes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// InvoiceStatusRequest body for PATCH /invoices/:id/status.
type InvoiceStatusRequest struct {
	Status string `json:"status"`
}

// SendRequest body for sending an estimate or invoice to the client.
// Method is "email" or "sms"; Recipient overrides the client's stored
// contact when set.
type SendRequest struct {
	Method    string `json:"method"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// RespondResult outcome of a public estimate response link.
type RespondResult struct {
	EstimateID     string `json:"estimate_id"`
	EstimateNumber string `json:"estimate_number"`
	Action         string `json:"action"`
	InvoiceID      string `json:"invoice_id,omitempty"`
	InvoiceNumber  string `json:"invoice_number,omitempty"`
}
