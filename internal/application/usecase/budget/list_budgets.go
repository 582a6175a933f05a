// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Statuses []*entity.BudgetStatus
}

// ListBudgetsUseCase lists all budgets for a user with their derived
// spending state.
type ListBudgetsUseCase struct {
	budgetRepo    adapter.BudgetRepository
	statusUseCase *GetBudgetStatusUseCase
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, statusUseCase *GetBudgetStatusUseCase) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:    budgetRepo,
		statusUseCase: statusUseCase,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	statuses := make([]*entity.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		status, err := uc.statusUseCase.computeStatus(ctx, b)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return &ListBudgetsOutput{
		Statuses: statuses,
	}, nil
}
