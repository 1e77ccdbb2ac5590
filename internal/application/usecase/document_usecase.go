package usecase

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// DocumentUseCase uploaded-document management. Files land in storage
// first; the database row points at the stored URL.
type DocumentUseCase struct {
	repo    repository.DocumentRepository
	storage ports.FileStorage
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(repo repository.DocumentRepository, storage ports.FileStorage) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, storage: storage}
}

// Upload stores the file and records the document. The stored name is
// prefixed with the document ID so uploads can never collide.
func (uc *DocumentUseCase) Upload(ctx context.Context, name, projectID, category, uploadedBy, notes, filename string, r io.Reader) (*dto.DocumentResponse, error) {
	if filename == "" {
		return nil, domain.ErrInvalidInput
	}
	if name == "" {
		name = filename
	}
	id := uuid.New().String()
	stored := id + filepath.Ext(filename)
	url, err := uc.storage.Save(ctx, stored, r)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc := &entity.Document{
		ID:           id,
		DocumentName: name,
		ProjectID:    projectID,
		Category:     category,
		FileURL:      url,
		UploadedBy:   uploadedBy,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// GetByID fetches one document.
func (uc *DocumentUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentResponse(doc), nil
}

// List pages through documents.
func (uc *DocumentUseCase) List(page dto.PageRequest) ([]*dto.DocumentResponse, error) {
	docs, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// ListByProject returns all documents attached to one project.
func (uc *DocumentUseCase) ListByProject(projectID string) ([]*dto.DocumentResponse, error) {
	docs, err := uc.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// Delete removes a document row. The stored file is left behind; uploads
// are served as immutable history.
func (uc *DocumentUseCase) Delete(id string) error {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:           d.ID,
		DocumentName: d.DocumentName,
		ProjectID:    d.ProjectID,
		Category:     d.Category,
		FileURL:      d.FileURL,
		UploadedBy:   d.UploadedBy,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
