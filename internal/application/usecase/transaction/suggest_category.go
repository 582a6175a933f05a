// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Description string
	Type        entity.TransactionType
}

// SuggestCategoryOutput represents the output of a category suggestion.
type SuggestCategoryOutput struct {
	Category    *entity.Category // Existing category, when matched
	NewCategory *adapter.SuggestedNewCategory
	Confidence  float64
	Reasoning   string
}

// SuggestCategoryUseCase asks the suggestion provider for a category match
// for an uncategorized transaction description.
type SuggestCategoryUseCase struct {
	suggestionService adapter.SuggestionService
	categoryRepo      adapter.CategoryRepository
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	suggestionService adapter.SuggestionService,
	categoryRepo adapter.CategoryRepository,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		suggestionService: suggestionService,
		categoryRepo:      categoryRepo,
	}
}

// Execute performs the suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion service is not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	if input.Description == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description is required",
			nil,
		)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	result, err := uc.suggestionService.SuggestCategory(ctx, &adapter.CategorySuggestionRequest{
		Description:        input.Description,
		Type:               input.Type,
		ExistingCategories: categories,
	})
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSuggestionFailed,
			"category suggestion failed",
			err,
		)
	}

	output := &SuggestCategoryOutput{
		NewCategory: result.NewCategory,
		Confidence:  result.Confidence,
		Reasoning:   result.Reasoning,
	}

	// Only surface existing-category matches the user actually owns.
	if result.CategoryID != nil {
		for _, c := range categories {
			if c.ID == *result.CategoryID {
				output.Category = c
				break
			}
		}
	}

	return output, nil
}
