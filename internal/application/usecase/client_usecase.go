package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// ClientUseCase CRUD for clients.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create creates a client.
func (uc *ClientUseCase) Create(in dto.ClientRequest) (*dto.ClientResponse, error) {
	if in.ClientName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String(),
		ClientName:     in.ClientName,
		ContactName:    in.ContactName,
		Phone:          in.Phone,
		Email:          in.Email,
		BillingAddress: in.BillingAddress,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID fetches one client.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List pages through clients.
func (uc *ClientUseCase) List(page dto.PageRequest) ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update rewrites a client's fields.
func (uc *ClientUseCase) Update(id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClientName != "" {
		client.ClientName = in.ClientName
	}
	client.ContactName = in.ContactName
	client.Phone = in.Phone
	client.Email = in.Email
	client.BillingAddress = in.BillingAddress
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete removes a client.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:             c.ID,
		ClientName:     c.ClientName,
		ContactName:    c.ContactName,
		Phone:          c.Phone,
		Email:          c.Email,
		BillingAddress: c.BillingAddress,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
