package billing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

func newInvoiceFixture(t *testing.T, projectType entity.ProjectType) (*appbilling.InvoiceUseCase, *billingFixture) {
	t.Helper()
	fx := newBillingFixture(t, projectType)
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"client-1": {ID: "client-1", ClientName: "Lakeside Mall", ContactName: "Dana", Email: "dana@example.com", Phone: "+15125550100"},
	}}
	projectRepo := &fakeProjectRepo{projects: map[string]*entity.Project{
		"project-1": {ID: "project-1", ProjectName: "RTU replacement", ClientID: "client-1", ProjectType: projectType},
	}}
	uc := appbilling.NewInvoiceUseCase(
		fx.invRepo, clientRepo, projectRepo, fx.seqRepo,
		fx.email, fx.sms, fx.links,
	)
	return uc, fx
}

func TestInvoiceCreate_TaxSkipsNonTaxableLines(t *testing.T) {
	uc, _ := newInvoiceFixture(t, entity.ProjectTypeCommercial)
	nonTaxable := false

	resp, err := uc.Create(context.Background(), dto.InvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{
			{Description: "Condenser coil", Quantity: d("1"), UnitPrice: d("400")},
			{Description: "Labor", Quantity: d("10"), UnitPrice: d("90"), Taxable: &nonTaxable},
		},
	})
	require.NoError(t, err)

	// Subtotal counts everything; tax only the taxable 400.
	assert.True(t, resp.Subtotal.Equal(d("1300")), "subtotal %s", resp.Subtotal)
	assert.True(t, resp.TaxAmount.Equal(d("33")), "tax %s", resp.TaxAmount)
	assert.True(t, resp.TotalAmount.Equal(d("1333")), "total %s", resp.TotalAmount)
	assert.Equal(t, fmt.Sprintf("INV-%d-0001", time.Now().Year()), resp.InvoiceNumber)
}

func TestInvoiceCreate_ResidentialNeverTaxed(t *testing.T) {
	uc, _ := newInvoiceFixture(t, entity.ProjectTypeResidential)

	resp, err := uc.Create(context.Background(), dto.InvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{
			{Description: "Furnace tune-up", Quantity: d("1"), UnitPrice: d("250")},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TaxAmount.IsZero(), "tax %s", resp.TaxAmount)
	assert.True(t, resp.TotalAmount.Equal(d("250")), "total %s", resp.TotalAmount)
}

func TestInvoiceCreate_UnknownProjectRejected(t *testing.T) {
	uc, _ := newInvoiceFixture(t, entity.ProjectTypeCommercial)

	_, err := uc.Create(context.Background(), dto.InvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "no-such-project",
		LineItems: []entity.LineItem{{Description: "x", Quantity: d("1"), UnitPrice: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceUpdate_NumberImmutable(t *testing.T) {
	uc, _ := newInvoiceFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.InvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Thermostat", Quantity: d("1"), UnitPrice: d("120")}},
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, dto.InvoiceRequest{
		LineItems: []entity.LineItem{{Description: "Thermostat", Quantity: d("2"), UnitPrice: d("120")}},
	})
	require.NoError(t, err)

	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.True(t, updated.Subtotal.Equal(d("240")), "subtotal %s", updated.Subtotal)
	assert.True(t, updated.TaxAmount.Equal(d("19.8")), "tax %s", updated.TaxAmount)
}

func TestInvoiceUpdateStatus_RejectsUnknown(t *testing.T) {
	uc, _ := newInvoiceFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.InvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Filter", Quantity: d("1"), UnitPrice: d("30")}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, created.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.UpdateStatus(ctx, created.ID, "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.Status)
}

func TestInvoiceSend_EmailMovesDraftToSent(t *testing.T) {
	uc, fx := newInvoiceFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.InvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Compressor", Quantity: d("1"), UnitPrice: d("900")}},
	})
	require.NoError(t, err)

	sent, err := uc.Send(ctx, created.ID, dto.SendRequest{Method: "email"})
	require.NoError(t, err)

	assert.Equal(t, "sent", sent.Status)
	require.Len(t, fx.email.sent, 1)
	assert.Contains(t, fx.email.sent[0], "dana@example.com")
	assert.Contains(t, fx.email.sent[0], created.InvoiceNumber)
}

func TestInvoiceSend_SMSUsesClientPhone(t *testing.T) {
	uc, fx := newInvoiceFixture(t, entity.ProjectTypeResidential)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.InvoiceRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Service call", Quantity: d("1"), UnitPrice: d("95")}},
	})
	require.NoError(t, err)

	_, err = uc.Send(ctx, created.ID, dto.SendRequest{Method: "sms"})
	require.NoError(t, err)

	require.Len(t, fx.sms.sent, 1)
	assert.Contains(t, fx.sms.sent[0], "+15125550100")
	assert.Contains(t, fx.sms.sent[0], "/api/public/invoices/"+created.ID)
}
