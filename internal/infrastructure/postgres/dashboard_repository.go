package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo read-only aggregation queries for the home dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository builds the adapter.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// Summary gathers the dashboard numbers in a single round trip. Scalar
// subselects keep each count independent; the whole statement still runs
// in one snapshot.
func (r *DashboardRepo) Summary() (*repository.DashboardSummary, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM projects  WHERE status IN ('pending', 'in_progress'))          AS active_projects,
	    (SELECT COUNT(*) FROM tasks     WHERE status <> 'complete')                          AS open_tasks,
	    (SELECT COUNT(*) FROM estimates WHERE status IN ('draft', 'sent'))                   AS pending_estimates,
	    (SELECT COALESCE(SUM(total_amount), 0) FROM invoices
	        WHERE status IN ('sent', 'overdue'))                                             AS outstanding_total,
	    (SELECT COUNT(*) FROM invoices  WHERE status IN ('sent', 'overdue'))                 AS outstanding_count,
	    (SELECT COALESCE(SUM(amount), 0) FROM expenses
	        WHERE expense_date >= date_trunc('month', CURRENT_DATE))                         AS expenses_this_month,
	    (SELECT COUNT(*) FROM appointments
	        WHERE status = 'scheduled'
	          AND start_time >= NOW()
	          AND start_time < NOW() + INTERVAL '7 days')                                    AS upcoming_visits`

	var s repository.DashboardSummary
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&s.ActiveProjects, &s.OpenTasks, &s.PendingEstimates,
		&s.OutstandingTotal, &s.OutstandingCount, &s.ExpensesThisMonth, &s.UpcomingVisits,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}
