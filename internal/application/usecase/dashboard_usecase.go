package usecase

import (
	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// DashboardUseCase the aggregate home-screen summary.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary returns the current operational numbers.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	s, err := uc.repo.Summary()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		ActiveProjects:    s.ActiveProjects,
		OpenTasks:         s.OpenTasks,
		PendingEstimates:  s.PendingEstimates,
		OutstandingTotal:  s.OutstandingTotal,
		OutstandingCount:  s.OutstandingCount,
		ExpensesThisMonth: s.ExpensesThisMonth,
		UpcomingVisits:    s.UpcomingVisits,
	}, nil
}
