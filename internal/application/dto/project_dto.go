package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectRequest create/update payload for a project.
// Dates use YYYY-MM-DD; empty means unset.
type ProjectRequest struct {
	ProjectName    string          `json:"project_name"`
	ClientID       string          `json:"client_id"`
	SiteAddress    string          `json:"site_address"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Status         string          `json:"status"`
	ProjectType    string          `json:"project_type"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Notes          string          `json:"notes"`
}

// ProjectResponse project representation.
type ProjectResponse struct {
	ID             string          `json:"id"`
	ProjectName    string          `json:"project_name"`
	ClientID       string          `json:"client_id"`
	SiteAddress    string          `json:"site_address"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	Status         string          `json:"status"`
	ProjectType    string          `json:"project_type"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
