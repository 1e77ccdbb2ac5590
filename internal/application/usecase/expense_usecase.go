package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// ExpenseUseCase CRUD for expenses.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func validExpenseCategory(c entity.ExpenseCategory) bool {
	switch c {
	case entity.ExpenseCategoryMaterials, entity.ExpenseCategoryTools, entity.ExpenseCategoryFuel,
		entity.ExpenseCategorySubcontractor, entity.ExpenseCategoryAdmin, entity.ExpenseCategoryOther:
		return true
	}
	return false
}

// Create records an expense.
func (uc *ExpenseUseCase) Create(in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.ExpenseName == "" || in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category := entity.ExpenseCategoryOther
	if in.Category != "" {
		category = entity.ExpenseCategory(in.Category)
		if !validExpenseCategory(category) {
			return nil, domain.ErrInvalidInput
		}
	}
	expenseDate := time.Now()
	if in.ExpenseDate != "" {
		t, err := time.Parse(dateLayout, in.ExpenseDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expenseDate = t
	}

	now := time.Now()
	expense := &entity.Expense{
		ID:            uuid.New().String(),
		ExpenseName:   in.ExpenseName,
		Vendor:        in.Vendor,
		Category:      category,
		ExpenseDate:   expenseDate,
		Amount:        in.Amount,
		ProjectID:     in.ProjectID,
		ReceiptURL:    in.ReceiptURL,
		TaxDeductible: in.TaxDeductible,
		PaidBy:        in.PaidBy,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID fetches one expense.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(expense), nil
}

// List pages through expenses.
func (uc *ExpenseUseCase) List(page dto.PageRequest) ([]*dto.ExpenseResponse, error) {
	expenses, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// ListByProject returns all expenses charged to one project.
func (uc *ExpenseUseCase) ListByProject(projectID string) ([]*dto.ExpenseResponse, error) {
	expenses, err := uc.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Update rewrites an expense's fields.
func (uc *ExpenseUseCase) Update(id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.ExpenseName != "" {
		expense.ExpenseName = in.ExpenseName
	}
	expense.Vendor = in.Vendor
	if in.Category != "" {
		category := entity.ExpenseCategory(in.Category)
		if !validExpenseCategory(category) {
			return nil, domain.ErrInvalidInput
		}
		expense.Category = category
	}
	if in.ExpenseDate != "" {
		t, err := time.Parse(dateLayout, in.ExpenseDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expense.ExpenseDate = t
	}
	if in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsZero() {
		expense.Amount = in.Amount
	}
	expense.ProjectID = in.ProjectID
	expense.ReceiptURL = in.ReceiptURL
	expense.TaxDeductible = in.TaxDeductible
	expense.PaidBy = in.PaidBy
	expense.Notes = in.Notes
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete removes an expense.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		ExpenseName:   e.ExpenseName,
		Vendor:        e.Vendor,
		Category:      string(e.Category),
		ExpenseDate:   e.ExpenseDate,
		Amount:        e.Amount,
		ProjectID:     e.ProjectID,
		ReceiptURL:    e.ReceiptURL,
		TaxDeductible: e.TaxDeductible,
		PaidBy:        e.PaidBy,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
