// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// DefaultNearLimitRatio is the warning threshold: a budget whose remaining
// allocation is at or below this fraction of the allocated amount is near its
// limit.
var DefaultNearLimitRatio = decimal.NewFromFloat(0.2)

// ClassifySeverity classifies a budget's remaining allocation. Equality sits
// on the lower-severity side of each boundary: remaining == 0 is near_limit
// rather than over, and remaining == ratio x allocated is still near_limit.
func ClassifySeverity(remaining, allocated, nearLimitRatio decimal.Decimal) entity.BudgetSeverity {
	if remaining.IsNegative() {
		return entity.BudgetSeverityOver
	}
	if remaining.LessThanOrEqual(allocated.Mul(nearLimitRatio)) {
		return entity.BudgetSeverityNearLimit
	}
	return entity.BudgetSeverityOK
}

// GetBudgetStatusInput represents the input for computing a budget's status.
type GetBudgetStatusInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// GetBudgetStatusOutput represents the output of a budget status computation.
type GetBudgetStatusOutput struct {
	Status *entity.BudgetStatus
}

// GetBudgetStatusUseCase computes allocated vs. spent for a budget's category
// within its period and flags overflow.
type GetBudgetStatusUseCase struct {
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	nearLimitRatio  decimal.Decimal
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	nearLimitRatio decimal.Decimal,
) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		nearLimitRatio:  nearLimitRatio,
	}
}

// Execute performs the status computation.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context, input GetBudgetStatusInput) (*GetBudgetStatusOutput, error) {
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

	status, err := uc.computeStatus(ctx, budget)
	if err != nil {
		return nil, err
	}

	return &GetBudgetStatusOutput{
		Status: status,
	}, nil
}

// computeStatus derives spent, remaining and severity for a budget.
func (uc *GetBudgetStatusUseCase) computeStatus(ctx context.Context, budget *entity.Budget) (*entity.BudgetStatus, error) {
	spent, err := uc.transactionRepo.SumExpensesByCategory(
		ctx,
		budget.UserID,
		budget.CategoryID,
		budget.StartDate,
		budget.EndDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category spending: %w", err)
	}

	category, err := uc.categoryRepo.FindByID(ctx, budget.CategoryID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		// A deleted category leaves the status without category detail.
		category = nil
	}

	remaining := budget.Amount.Sub(spent)

	return &entity.BudgetStatus{
		Budget:    budget,
		Category:  category,
		Spent:     spent,
		Remaining: remaining,
		Severity:  ClassifySeverity(remaining, budget.Amount, uc.nearLimitRatio),
	}, nil
}
