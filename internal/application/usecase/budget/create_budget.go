// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// CreateBudgetInput represents the input for budget creation. When StartDate
// and EndDate are nil, the bounds of the period instance containing today are
// used.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Period     entity.BudgetPeriod
	StartDate  *time.Time
	EndDate    *time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	now          func() time.Time
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	now func() time.Time,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		now:          now,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAllocation,
			"allocated amount must not be negative",
			domainerror.ErrInvalidAllocation,
		)
	}

	if !isValidBudgetPeriod(input.Period) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'weekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrBudgetCategoryNotFound,
		)
	}
	if category.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotOwned,
			"category does not belong to user",
			domainerror.ErrBudgetCategoryNotOwned,
		)
	}

	start, end := PeriodBounds(uc.now(), input.Period)
	if input.StartDate != nil {
		start = valueobject.NormalizeDate(*input.StartDate)
	}
	if input.EndDate != nil {
		end = valueobject.NormalizeDate(*input.EndDate)
	}
	if end.Before(start) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetRange,
			"end date must not be before start date",
			domainerror.ErrInvalidBudgetRange,
		)
	}

	// A category has at most one budget per concrete period instance.
	exists, err := uc.budgetRepo.ExistsOverlapping(ctx, input.UserID, input.CategoryID, start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget overlap: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetOverlap,
			"a budget already exists for this category and period",
			domainerror.ErrBudgetOverlap,
		)
	}

	name := input.Name
	if name == "" {
		name = category.Name
	}

	budget := entity.NewBudget(
		input.UserID,
		input.CategoryID,
		name,
		input.Amount,
		input.Period,
		start,
		end,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}
