package billing_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
	"github.com/cooltechhq/hvac-ops-api/pkg/jwt"
)

// ── in-memory fakes ──────────────────────────────────────────────────────

type fakeEstimateRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Estimate
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{items: map[string]*entity.Estimate{}}
}

func (r *fakeEstimateRepo) Create(e *entity.Estimate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEstimateRepo) GetByID(id string) (*entity.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEstimateRepo) List(limit, offset int) ([]*entity.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Estimate, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEstimateRepo) ListByProject(projectID string) ([]*entity.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Estimate
	for _, e := range r.items {
		if e.ProjectID == projectID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEstimateRepo) ListNumbers() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.items {
		out = append(out, e.EstimateNumber)
	}
	return out, nil
}

func (r *fakeEstimateRepo) Update(e *entity.Estimate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

type fakeInvoiceRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{items: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(i *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Invoice, 0, len(r.items))
	for _, i := range r.items {
		cp := *i
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByProject(projectID string) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Invoice
	for _, i := range r.items {
		if i.ProjectID == projectID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListNumbers() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, i := range r.items {
		out = append(out, i.InvoiceNumber)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(i *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[i.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

type fakeSequenceRepo struct {
	mu       sync.Mutex
	counters map[string]int
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: map[string]int{}}
}

func (r *fakeSequenceRepo) key(kind string, year int) string {
	return fmt.Sprintf("%s:%d", kind, year)
}

func (r *fakeSequenceRepo) Next(kind string, year int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := r.key(kind, year)
	r.counters[k]++
	return r.counters[k], nil
}

func (r *fakeSequenceRepo) Seed(kind string, year, lastValue int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := r.key(kind, year)
	if _, ok := r.counters[k]; !ok {
		r.counters[k] = lastValue
	}
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error                    { return nil }
func (r *fakeClientRepo) Delete(id string) error                           { return nil }

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func (r *fakeProjectRepo) Create(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}
func (r *fakeProjectRepo) List(limit, offset int) ([]*entity.Project, error)      { return nil, nil }
func (r *fakeProjectRepo) ListByClient(clientID string) ([]*entity.Project, error) { return nil, nil }
func (r *fakeProjectRepo) Update(p *entity.Project) error                          { return nil }
func (r *fakeProjectRepo) Delete(id string) error                                  { return nil }

// fakeTxRunner passes the fakes straight through; these tests exercise the
// use case logic, not transactional isolation.
type fakeTxRunner struct {
	est *fakeEstimateRepo
	inv *fakeInvoiceRepo
	seq *fakeSequenceRepo
}

func (r *fakeTxRunner) RunBilling(ctx context.Context, fn func(
	repository.EstimateRepository,
	repository.InvoiceRepository,
	repository.SequenceRepository,
) error) error {
	return fn(r.est, r.inv, r.seq)
}

type fakeEmailSender struct {
	sent []string // "to|subject"
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.sent = append(s.sent, to+"|"+subject)
	return nil
}

type fakeSMSSender struct {
	sent []string
}

func (s *fakeSMSSender) Send(ctx context.Context, to, body string) error {
	s.sent = append(s.sent, to+"|"+body)
	return nil
}

// ── fixture ──────────────────────────────────────────────────────────────

type billingFixture struct {
	uc      *appbilling.EstimateUseCase
	estRepo *fakeEstimateRepo
	invRepo *fakeInvoiceRepo
	seqRepo *fakeSequenceRepo
	email   *fakeEmailSender
	sms     *fakeSMSSender
	links   appbilling.LinkConfig
}

func newBillingFixture(t *testing.T, projectType entity.ProjectType) *billingFixture {
	t.Helper()
	estRepo := newFakeEstimateRepo()
	invRepo := newFakeInvoiceRepo()
	seqRepo := newFakeSequenceRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"client-1": {ID: "client-1", ClientName: "Lakeside Mall", ContactName: "Dana", Email: "dana@example.com", Phone: "+15125550100"},
	}}
	projectRepo := &fakeProjectRepo{projects: map[string]*entity.Project{
		"project-1": {ID: "project-1", ProjectName: "RTU replacement", ClientID: "client-1", ProjectType: projectType},
	}}
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	links := appbilling.LinkConfig{
		Secret:        "test-secret",
		Issuer:        "hvac-ops-test",
		ExpDays:       30,
		PublicBaseURL: "http://test.local",
		CompanyName:   "Cool Tech Designs",
	}
	uc := appbilling.NewEstimateUseCase(
		estRepo, invRepo, clientRepo, projectRepo, seqRepo,
		&fakeTxRunner{est: estRepo, inv: invRepo, seq: seqRepo},
		email, sms, links,
	)
	return &billingFixture{uc: uc, estRepo: estRepo, invRepo: invRepo, seqRepo: seqRepo, email: email, sms: sms, links: links}
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// ── tests ────────────────────────────────────────────────────────────────

func TestEstimateCreate_NumbersAndTotals(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()
	year := time.Now().Year()

	first, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{
			{Description: "5-ton RTU", Quantity: d("1"), UnitPrice: d("1000")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("EST-%d-0001", year), first.EstimateNumber)
	assert.Equal(t, "draft", first.Status)
	assert.True(t, first.Subtotal.Equal(d("1000")), "subtotal %s", first.Subtotal)
	assert.True(t, first.TaxAmount.Equal(d("82.5")), "tax %s", first.TaxAmount)
	assert.True(t, first.TotalAmount.Equal(d("1082.5")), "total %s", first.TotalAmount)

	second, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Duct run", Quantity: d("2"), UnitPrice: d("150")}},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("EST-%d-0002", year), second.EstimateNumber)
}

func TestEstimateCreate_ResidentialTaxFree(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeResidential)

	resp, err := fx.uc.Create(context.Background(), dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Condenser", Quantity: d("1"), UnitPrice: d("2500")}},
	})
	require.NoError(t, err)
	assert.True(t, resp.TaxAmount.IsZero())
	assert.True(t, resp.TotalAmount.Equal(d("2500")))
}

func TestEstimateCreate_UnknownProjectRejected(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)

	_, err := fx.uc.Create(context.Background(), dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "nope",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEstimateUpdate_NumberImmutableTotalsRecomputed(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Coil", Quantity: d("1"), UnitPrice: d("100")}},
	})
	require.NoError(t, err)

	updated, err := fx.uc.Update(ctx, created.ID, dto.EstimateRequest{
		LineItems: []entity.LineItem{{Description: "Coil", Quantity: d("3"), UnitPrice: d("100")}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.EstimateNumber, updated.EstimateNumber)
	assert.True(t, updated.Subtotal.Equal(d("300")))
	assert.True(t, updated.TaxAmount.Equal(d("24.75")))
}

func TestEstimateUpdate_BackwardTransitionRejected(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		Status:    "sent",
	})
	require.NoError(t, err)

	_, err = fx.uc.Update(ctx, created.ID, dto.EstimateRequest{Status: "draft"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEstimateSend_EmailMarksSent(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Filter rack", Quantity: d("1"), UnitPrice: d("80")}},
	})
	require.NoError(t, err)

	sent, err := fx.uc.Send(ctx, created.ID, dto.SendRequest{Method: "email"})
	require.NoError(t, err)
	assert.Equal(t, "sent", sent.Status)
	require.Len(t, fx.email.sent, 1)
	assert.Contains(t, fx.email.sent[0], "dana@example.com")
	assert.Contains(t, fx.email.sent[0], created.EstimateNumber)
}

func TestEstimateSend_SMSUsesClientPhone(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Thermostat", Quantity: d("1"), UnitPrice: d("250")}},
	})
	require.NoError(t, err)

	_, err = fx.uc.Send(ctx, created.ID, dto.SendRequest{Method: "sms"})
	require.NoError(t, err)
	require.Len(t, fx.sms.sent, 1)
	assert.Contains(t, fx.sms.sent[0], "+15125550100")
	assert.Contains(t, fx.sms.sent[0], "estimate-response")
}

func approveToken(t *testing.T, fx *billingFixture, estimateID string) string {
	t.Helper()
	token, err := jwt.GenerateAction(fx.links.Secret, estimateID, jwt.ActionApprove, fx.links.Issuer, fx.links.ExpDays)
	require.NoError(t, err)
	return token
}

func TestRespond_ApproveCreatesInvoiceVerbatim(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	// The non-taxable flag would change the totals if the invoice were
	// repriced; approval must carry them verbatim instead.
	nonTaxable := false
	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{
			{Description: "Labor", Quantity: d("10"), UnitPrice: d("90"), Taxable: &nonTaxable},
			{Description: "Equipment", Quantity: d("1"), UnitPrice: d("100")},
		},
	})
	require.NoError(t, err)
	// Estimate rule: whole subtotal taxed. 1000 × 0.0825 = 82.50.
	require.True(t, created.TaxAmount.Equal(d("82.5")))

	result, err := fx.uc.Respond(ctx, created.ID, "approve", approveToken(t, fx, created.ID))
	require.NoError(t, err)
	assert.Equal(t, "approve", result.Action)
	require.NotEmpty(t, result.InvoiceID)

	inv, err := fx.invRepo.GetByID(result.InvoiceID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.Subtotal.Equal(created.Subtotal))
	assert.True(t, inv.TaxAmount.Equal(created.TaxAmount), "approved amount must carry over unchanged, got %s", inv.TaxAmount)
	assert.True(t, inv.TotalAmount.Equal(created.TotalAmount))
	assert.Len(t, inv.LineItems, 2)
	assert.Contains(t, inv.Notes, created.EstimateNumber)
	require.NotNil(t, inv.DueDate)
	wantDue := time.Now().AddDate(0, 0, 30)
	assert.WithinDuration(t, wantDue, *inv.DueDate, time.Minute)

	est, err := fx.estRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstimateStatusApproved, est.Status)
}

func TestRespond_SecondClickIsNoOp(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Compressor", Quantity: d("1"), UnitPrice: d("1800")}},
	})
	require.NoError(t, err)

	token := approveToken(t, fx, created.ID)
	_, err = fx.uc.Respond(ctx, created.ID, "approve", token)
	require.NoError(t, err)

	_, err = fx.uc.Respond(ctx, created.ID, "approve", token)
	assert.ErrorIs(t, err, domain.ErrAlreadyResponded)

	invoices, err := fx.invRepo.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, invoices, 1, "a replayed link must not create a second invoice")
}

func TestRespond_DeclineMarksDeclined(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Mini-split", Quantity: d("1"), UnitPrice: d("3200")}},
	})
	require.NoError(t, err)

	token, err := jwt.GenerateAction(fx.links.Secret, created.ID, jwt.ActionDecline, fx.links.Issuer, fx.links.ExpDays)
	require.NoError(t, err)

	result, err := fx.uc.Respond(ctx, created.ID, "decline", token)
	require.NoError(t, err)
	assert.Empty(t, result.InvoiceID)

	est, err := fx.estRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstimateStatusDeclined, est.Status)

	invoices, err := fx.invRepo.List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestRespond_TokenMismatchRejected(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Heat pump", Quantity: d("1"), UnitPrice: d("4100")}},
	})
	require.NoError(t, err)

	// Approve token presented on the decline URL.
	token := approveToken(t, fx, created.ID)
	_, err = fx.uc.Respond(ctx, created.ID, "decline", token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// Token signed with a different secret.
	forged, err := jwt.GenerateAction("other-secret", created.ID, jwt.ActionApprove, fx.links.Issuer, 30)
	require.NoError(t, err)
	_, err = fx.uc.Respond(ctx, created.ID, "approve", forged)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	est, err := fx.estRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstimateStatusDraft, est.Status, "rejected tokens must not mutate the estimate")
}

func TestRespond_ExpiredTokenGone(t *testing.T) {
	fx := newBillingFixture(t, entity.ProjectTypeCommercial)
	ctx := context.Background()

	created, err := fx.uc.Create(ctx, dto.EstimateRequest{
		ClientID:  "client-1",
		ProjectID: "project-1",
		LineItems: []entity.LineItem{{Description: "Air handler", Quantity: d("1"), UnitPrice: d("2600")}},
	})
	require.NoError(t, err)

	// Negative lifetime produces a token that expired yesterday.
	expired, err := jwt.GenerateAction(fx.links.Secret, created.ID, jwt.ActionApprove, fx.links.Issuer, -1)
	require.NoError(t, err)

	_, err = fx.uc.Respond(ctx, created.ID, "approve", expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	est, err := fx.estRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstimateStatusDraft, est.Status)
}
