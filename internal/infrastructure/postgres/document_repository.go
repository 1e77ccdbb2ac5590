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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo DocumentRepository over PostgreSQL (usable with pool or tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository builds the adapter. Pass a pool or tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, document_name, COALESCE(project_id, ''), category, file_url,
	uploaded_by, notes, created_at, updated_at`

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.DocumentName, &d.ProjectID, &d.Category, &d.FileURL,
		&d.UploadedBy, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persists a new document row.
func (r *DocumentRepo) Create(document *entity.Document) error {
	query := `
		INSERT INTO documents (id, document_name, project_id, category, file_url, uploaded_by, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		document.ID, document.DocumentName, nullIfEmpty(document.ProjectID), document.Category,
		document.FileURL, document.UploadedBy, document.Notes, document.CreatedAt, document.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID fetches a document by ID.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// List pages through documents, newest first.
func (r *DocumentRepo) List(limit, offset int) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryDocuments(query, limit, offset)
}

// ListByProject returns all documents attached to one project.
func (r *DocumentRepo) ListByProject(projectID string) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE project_id = $1 ORDER BY created_at DESC`
	return r.queryDocuments(query, projectID)
}

func (r *DocumentRepo) queryDocuments(query string, args ...any) ([]*entity.Document, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Delete removes a document row by ID.
func (r *DocumentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
