package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProjectUseCase CRUD for projects.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase builds the use case.
func NewProjectUseCase(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo}
}

func validProjectStatus(s entity.ProjectStatus) bool {
	switch s {
	case entity.ProjectStatusPending, entity.ProjectStatusInProgress, entity.ProjectStatusOnHold, entity.ProjectStatusCompleted:
		return true
	}
	return false
}

func validProjectType(t entity.ProjectType) bool {
	return t == entity.ProjectTypeResidential || t == entity.ProjectTypeCommercial
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

// Create creates a project. The project type fixes the tax treatment of
// every estimate and invoice billed against it.
func (uc *ProjectUseCase) Create(in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	if in.ProjectName == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrInvalidInput
	}
	status := entity.ProjectStatusPending
	if in.Status != "" {
		status = entity.ProjectStatus(in.Status)
		if !validProjectStatus(status) {
			return nil, domain.ErrInvalidInput
		}
	}
	projectType := entity.ProjectTypeResidential
	if in.ProjectType != "" {
		projectType = entity.ProjectType(in.ProjectType)
		if !validProjectType(projectType) {
			return nil, domain.ErrInvalidInput
		}
	}
	startDate, err := parseDatePtr(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(in.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := &entity.Project{
		ID:             uuid.New().String(),
		ProjectName:    in.ProjectName,
		ClientID:       in.ClientID,
		SiteAddress:    in.SiteAddress,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         status,
		ProjectType:    projectType,
		EstimatedValue: in.EstimatedValue,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID fetches one project.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List pages through projects.
func (uc *ProjectUseCase) List(page dto.PageRequest) ([]*dto.ProjectResponse, error) {
	projects, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// ListByClient returns all projects of one client.
func (uc *ProjectUseCase) ListByClient(clientID string) ([]*dto.ProjectResponse, error) {
	projects, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Update rewrites a project's fields. Changing the project type changes
// the tax treatment of future estimates and invoices only; already issued
// documents keep their stored totals.
func (uc *ProjectUseCase) Update(id string, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProjectName != "" {
		project.ProjectName = in.ProjectName
	}
	if in.ClientID != "" {
		project.ClientID = in.ClientID
	}
	project.SiteAddress = in.SiteAddress
	if in.Status != "" {
		status := entity.ProjectStatus(in.Status)
		if !validProjectStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = status
	}
	if in.ProjectType != "" {
		projectType := entity.ProjectType(in.ProjectType)
		if !validProjectType(projectType) {
			return nil, domain.ErrInvalidInput
		}
		project.ProjectType = projectType
	}
	if in.StartDate != "" {
		t, err := parseDatePtr(in.StartDate)
		if err != nil {
			return nil, err
		}
		project.StartDate = t
	}
	if in.EndDate != "" {
		t, err := parseDatePtr(in.EndDate)
		if err != nil {
			return nil, err
		}
		project.EndDate = t
	}
	project.EstimatedValue = in.EstimatedValue
	project.Notes = in.Notes
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete removes a project.
func (uc *ProjectUseCase) Delete(id string) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:             p.ID,
		ProjectName:    p.ProjectName,
		ClientID:       p.ClientID,
		SiteAddress:    p.SiteAddress,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Status:         string(p.Status),
		ProjectType:    string(p.ProjectType),
		EstimatedValue: p.EstimatedValue,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
