package billing

import (
	"context"
	"fmt"

	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// PDFUseCase renders printable estimates and invoices.
type PDFUseCase struct {
	estimateRepo repository.EstimateRepository
	invoiceRepo  repository.InvoiceRepository
	clientRepo   repository.ClientRepository
	projectRepo  repository.ProjectRepository
	estimateGen  EstimatePDFGenerator
	invoiceGen   InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	estimateRepo repository.EstimateRepository,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	estimateGen EstimatePDFGenerator,
	invoiceGen InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		estimateRepo: estimateRepo,
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		estimateGen:  estimateGen,
		invoiceGen:   invoiceGen,
	}
}

// EstimatePDF renders one estimate. Returns the bytes and a suggested
// filename.
func (uc *PDFUseCase) EstimatePDF(ctx context.Context, id string) ([]byte, string, error) {
	est, err := uc.estimateRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if est == nil {
		return nil, "", domain.ErrNotFound
	}
	client, _ := uc.clientRepo.GetByID(est.ClientID)
	project, _ := uc.projectRepo.GetByID(est.ProjectID)
	pdf, err := uc.estimateGen.GenerateEstimatePDF(ctx, est, client, project)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generate estimate: %w", err)
	}
	return pdf, fmt.Sprintf("%s.pdf", est.EstimateNumber), nil
}

// InvoicePDF renders one invoice. Returns the bytes and a suggested
// filename.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	client, _ := uc.clientRepo.GetByID(inv.ClientID)
	project, _ := uc.projectRepo.GetByID(inv.ProjectID)
	pdf, err := uc.invoiceGen.GenerateInvoicePDF(ctx, inv, client, project)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generate invoice: %w", err)
	}
	return pdf, fmt.Sprintf("%s.pdf", inv.InvoiceNumber), nil
}
