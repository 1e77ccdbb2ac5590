package repository

import "github.com/shopspring/decimal"

// DashboardSummary aggregate counts and amounts for the home dashboard.
type DashboardSummary struct {
	ActiveProjects    int
	OpenTasks         int
	PendingEstimates  int // draft or sent
	OutstandingTotal  decimal.Decimal
	OutstandingCount  int // sent or overdue invoices
	ExpensesThisMonth decimal.Decimal
	UpcomingVisits    int // appointments in the next 7 days
}

// DashboardRepository read-only aggregation port.
type DashboardRepository interface {
	Summary() (*DashboardSummary, error)
}
