package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo ProjectRepository over PostgreSQL (usable with pool or tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository builds the adapter. Pass a pool or tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, project_name, client_id, site_address, start_date, end_date,
	status, project_type, estimated_value, notes, created_at, updated_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.ProjectName, &p.ClientID, &p.SiteAddress, &p.StartDate, &p.EndDate,
		&p.Status, &p.ProjectType, &p.EstimatedValue, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a new project.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.ProjectName, project.ClientID, project.SiteAddress,
		project.StartDate, project.EndDate, project.Status, project.ProjectType,
		project.EstimatedValue, project.Notes, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID fetches a project by ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List pages through projects, newest first.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryProjects(query, limit, offset)
}

// ListByClient returns all projects of one client, newest first.
func (r *ProjectRepo) ListByClient(clientID string) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE client_id = $1 ORDER BY created_at DESC`
	return r.queryProjects(query, clientID)
}

func (r *ProjectRepo) queryProjects(query string, args ...any) ([]*entity.Project, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update rewrites a project.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET project_name = $2, client_id = $3, site_address = $4,
			start_date = $5, end_date = $6, status = $7, project_type = $8,
			estimated_value = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.ProjectName, project.ClientID, project.SiteAddress,
		project.StartDate, project.EndDate, project.Status, project.ProjectType,
		project.EstimatedValue, project.Notes, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID.
func (r *ProjectRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
