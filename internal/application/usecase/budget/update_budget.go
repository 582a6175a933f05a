// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	BudgetID  uuid.UUID
	UserID    uuid.UUID
	Name      *string
	Amount    *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	now        func() time.Time
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, now func() time.Time) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		now:        now,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudgetAccess,
			"not authorized to access this budget",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	if input.Name != nil {
		budget.Name = *input.Name
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidAllocation,
				"allocated amount must not be negative",
				domainerror.ErrInvalidAllocation,
			)
		}
		budget.Amount = *input.Amount
	}

	start := budget.StartDate
	end := budget.EndDate
	if input.StartDate != nil {
		start = valueobject.NormalizeDate(*input.StartDate)
	}
	if input.EndDate != nil {
		end = valueobject.NormalizeDate(*input.EndDate)
	}

	if input.StartDate != nil || input.EndDate != nil {
		if end.Before(start) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetRange,
				"end date must not be before start date",
				domainerror.ErrInvalidBudgetRange,
			)
		}

		exists, err := uc.budgetRepo.ExistsOverlapping(ctx, budget.UserID, budget.CategoryID, start, end, &budget.ID)
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

		budget.StartDate = start
		budget.EndDate = end
	}

	budget.UpdatedAt = uc.now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
