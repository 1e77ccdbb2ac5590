package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	domainbilling "github.com/cooltechhq/hvac-ops-api/internal/domain/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
	"github.com/cooltechhq/hvac-ops-api/pkg/jwt"
)

// LinkConfig settings for building outbound response links.
type LinkConfig struct {
	Secret        string // signs action tokens
	Issuer        string
	ExpDays       int    // action token lifetime
	PublicBaseURL string // e.g. https://app.cooltechdesigns.example
	CompanyName   string
}

const dateLayout = "2006-01-02"

// invoiceDueDays is the payment term applied to invoices generated from an
// approved estimate.
const invoiceDueDays = 30

// EstimateUseCase estimate lifecycle: create, update, send, and the public
// approve/decline response that may convert the estimate into an invoice.
type EstimateUseCase struct {
	estimateRepo repository.EstimateRepository
	invoiceRepo  repository.InvoiceRepository
	clientRepo   repository.ClientRepository
	projectRepo  repository.ProjectRepository
	seqRepo      repository.SequenceRepository
	txRunner     BillingTxRunner
	email        ports.EmailSender
	sms          ports.SMSSender
	links        LinkConfig
}

// NewEstimateUseCase builds the use case.
func NewEstimateUseCase(
	estimateRepo repository.EstimateRepository,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	seqRepo repository.SequenceRepository,
	txRunner BillingTxRunner,
	email ports.EmailSender,
	sms ports.SMSSender,
	links LinkConfig,
) *EstimateUseCase {
	return &EstimateUseCase{
		estimateRepo: estimateRepo,
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		seqRepo:      seqRepo,
		txRunner:     txRunner,
		email:        email,
		sms:          sms,
		links:        links,
	}
}

// loadProject resolves the estimate's project, which carries the tax
// treatment. A missing or unknown project ID is an input error: totals
// cannot be computed without knowing the project type.
func (uc *EstimateUseCase) loadProject(projectID string) (*entity.Project, error) {
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

// Create numbers the estimate from the per-year counter, computes totals
// from the project type, and persists. Status defaults to draft.
func (uc *EstimateUseCase) Create(ctx context.Context, in dto.EstimateRequest) (*dto.EstimateResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.loadProject(in.ProjectID)
	if err != nil {
		return nil, err
	}
	status := entity.EstimateStatusDraft
	if in.Status != "" {
		status = entity.EstimateStatus(in.Status)
		switch status {
		case entity.EstimateStatusDraft, entity.EstimateStatusSent, entity.EstimateStatusApproved, entity.EstimateStatusDeclined:
		default:
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
	var expiryDate *time.Time
	if in.ExpiryDate != "" {
		t, err := time.Parse(dateLayout, in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiryDate = &t
	}

	seq, err := uc.seqRepo.Next(string(domainbilling.KindEstimate), issueDate.Year())
	if err != nil {
		return nil, err
	}
	number := domainbilling.FormatNumber(domainbilling.PrefixEstimate, issueDate.Year(), seq)

	totals := domainbilling.ComputeTotals(in.LineItems, project.IsCommercial(), domainbilling.KindEstimate)
	est := &entity.Estimate{
		ID:             uuid.New().String(),
		EstimateNumber: number,
		ClientID:       in.ClientID,
		ProjectID:      in.ProjectID,
		IssueDate:      issueDate,
		ExpiryDate:     expiryDate,
		Status:         status,
		LineItems:      in.LineItems,
		Subtotal:       totals.Subtotal,
		TaxRate:        totals.TaxRate,
		TaxAmount:      totals.TaxAmount,
		TotalAmount:    totals.TotalAmount,
		Notes:          in.Notes,
		Photos:         in.Photos,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.estimateRepo.Create(est); err != nil {
		return nil, err
	}
	return toEstimateResponse(est), nil
}

// Update rewrites the estimate's editable fields and recomputes totals.
// The estimate number never changes; status changes must follow the
// forward-only lifecycle.
func (uc *EstimateUseCase) Update(ctx context.Context, id string, in dto.EstimateRequest) (*dto.EstimateResponse, error) {
	est, err := uc.estimateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}

	projectID := est.ProjectID
	if in.ProjectID != "" {
		projectID = in.ProjectID
	}
	project, err := uc.loadProject(projectID)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		next := entity.EstimateStatus(in.Status)
		if !est.Status.CanTransitionTo(next) {
			return nil, domain.ErrInvalidTransition
		}
		est.Status = next
	}
	if in.ClientID != "" {
		est.ClientID = in.ClientID
	}
	est.ProjectID = projectID
	if in.IssueDate != "" {
		t, err := time.Parse(dateLayout, in.IssueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		est.IssueDate = t
	}
	if in.ExpiryDate != "" {
		t, err := time.Parse(dateLayout, in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		est.ExpiryDate = &t
	}
	if in.LineItems != nil {
		est.LineItems = in.LineItems
	}
	est.Notes = in.Notes
	if in.Photos != nil {
		est.Photos = in.Photos
	}

	totals := domainbilling.ComputeTotals(est.LineItems, project.IsCommercial(), domainbilling.KindEstimate)
	est.Subtotal = totals.Subtotal
	est.TaxRate = totals.TaxRate
	est.TaxAmount = totals.TaxAmount
	est.TotalAmount = totals.TotalAmount
	est.UpdatedAt = time.Now()

	if err := uc.estimateRepo.Update(est); err != nil {
		return nil, err
	}
	return toEstimateResponse(est), nil
}

// GetByID fetches one estimate.
func (uc *EstimateUseCase) GetByID(ctx context.Context, id string) (*dto.EstimateResponse, error) {
	est, err := uc.estimateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}
	return toEstimateResponse(est), nil
}

// List pages through estimates, newest first.
func (uc *EstimateUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.EstimateResponse, error) {
	ests, err := uc.estimateRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EstimateResponse, 0, len(ests))
	for _, e := range ests {
		out = append(out, toEstimateResponse(e))
	}
	return out, nil
}

// ListByProject returns all estimates on one project.
func (uc *EstimateUseCase) ListByProject(ctx context.Context, projectID string) ([]*dto.EstimateResponse, error) {
	ests, err := uc.estimateRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EstimateResponse, 0, len(ests))
	for _, e := range ests {
		out = append(out, toEstimateResponse(e))
	}
	return out, nil
}

// Send delivers the estimate to the client by email or SMS, embedding
// signed approve/decline links, and moves a draft estimate to sent.
func (uc *EstimateUseCase) Send(ctx context.Context, id string, in dto.SendRequest) (*dto.EstimateResponse, error) {
	est, err := uc.estimateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}
	if est.Status.Terminal() {
		return nil, domain.ErrAlreadyResponded
	}
	client, err := uc.clientRepo.GetByID(est.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	approveURL, err := uc.responseURL(est.ID, jwt.ActionApprove)
	if err != nil {
		return nil, err
	}
	declineURL, err := uc.responseURL(est.ID, jwt.ActionDecline)
	if err != nil {
		return nil, err
	}

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
			subject = fmt.Sprintf("Estimate %s from %s", est.EstimateNumber, uc.links.CompanyName)
		}
		body := estimateEmailHTML(uc.links.CompanyName, client.ContactName, est, in.Message, approveURL, declineURL)
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
		body := fmt.Sprintf("%s: estimate %s for $%s. Approve: %s Decline: %s",
			uc.links.CompanyName, est.EstimateNumber, est.TotalAmount.StringFixed(2), approveURL, declineURL)
		if err := uc.sms.Send(ctx, to, body); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	if est.Status == entity.EstimateStatusDraft {
		est.Status = entity.EstimateStatusSent
		est.UpdatedAt = time.Now()
		if err := uc.estimateRepo.Update(est); err != nil {
			return nil, err
		}
	}
	return toEstimateResponse(est), nil
}

func (uc *EstimateUseCase) responseURL(estimateID, action string) (string, error) {
	token, err := jwt.GenerateAction(uc.links.Secret, estimateID, action, uc.links.Issuer, uc.links.ExpDays)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/api/public/estimate-response?id=%s&action=%s&token=%s",
		uc.links.PublicBaseURL, estimateID, action, token), nil
}

// Respond handles a public approve/decline link.
//
// The token must verify and must be bound to the estimate in the URL. An
// estimate already approved or declined returns ErrAlreadyResponded and is
// never mutated again, which makes the links effectively single-use.
//
// Approval flips the status and creates the invoice inside one
// transaction. The invoice copies the estimate's line items and totals
// verbatim: the amount the client approved is the amount billed, even
// where the invoice tax rule would price the same lines differently.
func (uc *EstimateUseCase) Respond(ctx context.Context, estimateID, action, token string) (*dto.RespondResult, error) {
	tokenEstimateID, tokenAction, err := jwt.ParseAction(uc.links.Secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if tokenEstimateID != estimateID || tokenAction != action {
		return nil, domain.ErrInvalidToken
	}

	result := &dto.RespondResult{EstimateID: estimateID, Action: action}
	err = uc.txRunner.RunBilling(ctx, func(
		estimateRepo repository.EstimateRepository,
		invoiceRepo repository.InvoiceRepository,
		seqRepo repository.SequenceRepository,
	) error {
		est, err := estimateRepo.GetByID(estimateID)
		if err != nil {
			return err
		}
		if est == nil {
			return domain.ErrNotFound
		}
		if est.Status.Terminal() {
			return domain.ErrAlreadyResponded
		}
		result.EstimateNumber = est.EstimateNumber

		now := time.Now()
		if action == jwt.ActionDecline {
			est.Status = entity.EstimateStatusDeclined
			est.UpdatedAt = now
			return estimateRepo.Update(est)
		}

		est.Status = entity.EstimateStatusApproved
		est.UpdatedAt = now
		if err := estimateRepo.Update(est); err != nil {
			return err
		}

		seq, err := seqRepo.Next(string(domainbilling.KindInvoice), now.Year())
		if err != nil {
			return err
		}
		due := now.AddDate(0, 0, invoiceDueDays)
		inv := &entity.Invoice{
			ID:            uuid.New().String(),
			InvoiceNumber: domainbilling.FormatNumber(domainbilling.PrefixInvoice, now.Year(), seq),
			ClientID:      est.ClientID,
			ProjectID:     est.ProjectID,
			IssueDate:     now,
			DueDate:       &due,
			Status:        entity.InvoiceStatusDraft,
			LineItems:     est.LineItems,
			Subtotal:      est.Subtotal,
			TaxRate:       est.TaxRate,
			TaxAmount:     est.TaxAmount,
			TotalAmount:   est.TotalAmount,
			Notes:         fmt.Sprintf("Auto-generated from approved estimate %s", est.EstimateNumber),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		result.InvoiceID = inv.ID
		result.InvoiceNumber = inv.InvoiceNumber
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func toEstimateResponse(e *entity.Estimate) *dto.EstimateResponse {
	return &dto.EstimateResponse{
		ID:             e.ID,
		EstimateNumber: e.EstimateNumber,
		ClientID:       e.ClientID,
		ProjectID:      e.ProjectID,
		IssueDate:      e.IssueDate,
		ExpiryDate:     e.ExpiryDate,
		Status:         string(e.Status),
		LineItems:      e.LineItems,
		Subtotal:       e.Subtotal,
		TaxRate:        e.TaxRate,
		TaxAmount:      e.TaxAmount,
		TotalAmount:    e.TotalAmount,
		Notes:          e.Notes,
		Photos:         e.Photos,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
