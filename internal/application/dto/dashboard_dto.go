package dto

import "github.com/shopspring/decimal"

// DashboardResponse operational summary for the home screen.
type DashboardResponse struct {
	ActiveProjects    int             `json:"active_projects"`
	OpenTasks         int             `json:"open_tasks"`
	PendingEstimates  int             `json:"pending_estimates"`
	OutstandingTotal  decimal.Decimal `json:"outstanding_total"`
	OutstandingCount  int             `json:"outstanding_count"`
	ExpensesThisMonth decimal.Decimal `json:"expenses_this_month"`
	UpcomingVisits    int             `json:"upcoming_visits"`
}
