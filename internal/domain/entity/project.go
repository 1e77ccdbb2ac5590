package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus lifecycle of a job site engagement.
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// ProjectType determines the sales tax treatment of every estimate and
// invoice billed against the project. This is the only place tax policy
// hangs off of: residential work is tax-free, commercial is taxed at the
// fixed state rate.
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
)

// Project is an HVAC job at a client site.
type Project struct {
	ID             string
	ProjectName    string
	ClientID       string
	SiteAddress    string
	StartDate      *time.Time
	EndDate        *time.Time
	Status         ProjectStatus
	ProjectType    ProjectType
	EstimatedValue decimal.Decimal
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsCommercial reports whether work on this project is taxable.
func (p *Project) IsCommercial() bool {
	return p.ProjectType == ProjectTypeCommercial
}
