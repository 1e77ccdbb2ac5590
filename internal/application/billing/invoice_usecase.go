package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	domainbilling "github.com/cooltechhq/hvac-ops-api/internal/domain/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// InvoiceUseCase invoice lifecycle for manually created invoices plus
// sending and status changes. Invoices born from an approved estimate are
// created by EstimateUseCase.Respond.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	seqRepo     repository.SequenceRepository
	email       ports.EmailSender
	sms         ports.SMSSender
	links       LinkConfig
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	seqRepo repository.SequenceRepository,
	email ports.EmailSender,
	sms ports.SMSSender,
	links LinkConfig,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		seqRepo:     seqRepo,
		email:       email,
		sms:         sms,
		links:       links,
	}
}

func (uc *InvoiceUseCase) loadProject(projectID string) (*entity.Project, error) {
	if projectID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrInvalidInput
	}
	return project, nil
}

// Create numbers the invoice and computes totals under the invoice tax
// rule: per-line taxable flags, commercial projects only.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.loadProject(in.ProjectID)
	if err != nil {
		return nil, err
	}
	status := entity.InvoiceStatusDraft
	if in.Status != "" {
		status = entity.InvoiceStatus(in.Status)
		if !entity.ValidInvoiceStatus(status) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	issueDate := now
	if in.IssueDate != "" {
		if issueDate, err = time.Parse(dateLayout, in.IssueDate); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	var dueDate *time.Time
	if in.DueDate != "" {
		t, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = &t
	}

	seq, err := uc.seqRepo.Next(string(domainbilling.KindInvoice), issueDate.Year())
	if err != nil {
		return nil, err
	}
	number := domainbilling.FormatNumber(domainbilling.PrefixInvoice, issueDate.Year(), seq)

	totals := domainbilling.ComputeTotals(in.LineItems, project.IsCommercial(), domainbilling.KindInvoice)
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: number,
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        status,
		LineItems:     in.LineItems,
		Subtotal:      totals.Subtotal,
		TaxRate:       totals.TaxRate,
		TaxAmount:     totals.TaxAmount,
		TotalAmount:   totals.TotalAmount,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Update rewrites editable fields and recomputes totals under the invoice
// tax rule. The invoice number never changes.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	projectID := inv.ProjectID
	if in.ProjectID != "" {
		projectID = in.ProjectID
	}
	project, err := uc.loadProject(projectID)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		status := entity.InvoiceStatus(in.Status)
		if !entity.ValidInvoiceStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		inv.Status = status
	}
	if in.ClientID != "" {
		inv.ClientID = in.ClientID
	}
	inv.ProjectID = projectID
	if in.IssueDate != "" {
		t, err := time.Parse(dateLayout, in.IssueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		inv.IssueDate = t
	}
	if in.DueDate != "" {
		t, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		inv.DueDate = &t
	}
	if in.LineItems != nil {
		inv.LineItems = in.LineItems
	}
	inv.Notes = in.Notes

	totals := domainbilling.ComputeTotals(inv.LineItems, project.IsCommercial(), domainbilling.KindInvoice)
	inv.Subtotal = totals.Subtotal
	inv.TaxRate = totals.TaxRate
	inv.TaxAmount = totals.TaxAmount
	inv.TotalAmount = totals.TotalAmount
	inv.UpdatedAt = time.Now()

	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// GetByID fetches one invoice.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List pages through invoices, newest first.
func (uc *InvoiceUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	invs, err := uc.invoiceRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invs))
	for _, i := range invs {
		out = append(out, toInvoiceResponse(i))
	}
	return out, nil
}

// ListByProject returns all invoices on one project.
func (uc *InvoiceUseCase) ListByProject(ctx context.Context, projectID string) ([]*dto.InvoiceResponse, error) {
	invs, err := uc.invoiceRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invs))
	for _, i := range invs {
		out = append(out, toInvoiceResponse(i))
	}
	return out, nil
}

// UpdateStatus applies an office status change (sent, paid, overdue).
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status string) (*dto.InvoiceResponse, error) {
	next := entity.InvoiceStatus(status)
	if !entity.ValidInvoiceStatus(next) {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	inv.Status = next
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Send delivers the invoice to the client by email or SMS with a link to
// the public invoice view, and moves a draft invoice to sent.
func (uc *InvoiceUseCase) Send(ctx context.Context, id string, in dto.SendRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	viewURL := fmt.Sprintf("%s/api/public/invoices/%s", uc.links.PublicBaseURL, inv.ID)

	switch in.Method {
	case "", "email":
		to := in.Recipient
		if to == "" {
			to = client.Email
		}
		if to == "" {
			return nil, domain.ErrInvalidInput
		}
		subject := in.Subject
		if subject == "" {
			subject = fmt.Sprintf("Invoice %s from %s", inv.InvoiceNumber, uc.links.CompanyName)
		}
		body := invoiceEmailHTML(uc.links.CompanyName, client.ContactName, inv, in.Message, viewURL)
		if err := uc.email.Send(ctx, to, subject, body); err != nil {
			return nil, err
		}
	case "sms":
		to := in.Recipient
		if to == "" {
			to = client.Phone
		}
		if to == "" {
			return nil, domain.ErrInvalidInput
		}
		body := fmt.Sprintf("%s: invoice %s for $%s is ready. View: %s",
			uc.links.CompanyName, inv.InvoiceNumber, inv.TotalAmount.StringFixed(2), viewURL)
		if err := uc.sms.Send(ctx, to, body); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	if inv.Status == entity.InvoiceStatusDraft {
		inv.Status = entity.InvoiceStatusSent
		inv.UpdatedAt = time.Now()
		if err := uc.invoiceRepo.Update(inv); err != nil {
			return nil, err
		}
	}
	return toInvoiceResponse(inv), nil
}

func toInvoiceResponse(i *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		ClientID:      i.ClientID,
		ProjectID:     i.ProjectID,
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		Status:        string(i.Status),
		LineItems:     i.LineItems,
		Subtotal:      i.Subtotal,
		TaxRate:       i.TaxRate,
		TaxAmount:     i.TaxAmount,
		TotalAmount:   i.TotalAmount,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
