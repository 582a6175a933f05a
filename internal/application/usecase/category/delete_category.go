// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct{}

// DeleteCategoryUseCase handles category deletion logic. A category with
// budgets attached cannot be deleted; transactions keep their rows and the
// category link is cleared by the repository.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	budgetRepo   adapter.BudgetRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	budgetRepo adapter.BudgetRepository,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := loadOwnedCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check budgets: %w", err)
	}
	for _, b := range budgets {
		if b.CategoryID == category.ID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category has budgets attached and cannot be deleted",
				domainerror.ErrCategoryInUse,
			)
		}
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{}, nil
}
