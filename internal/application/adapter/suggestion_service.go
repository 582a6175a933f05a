// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategorySuggestionRequest asks for a category suggestion for a transaction
// description, given the user's existing categories.
type CategorySuggestionRequest struct {
	Description        string
	Type               entity.TransactionType
	ExistingCategories []*entity.Category
}

// SuggestedNewCategory describes a proposed category that does not exist yet.
type SuggestedNewCategory struct {
	Name  string
	Icon  string
	Color string
}

// CategorySuggestionResult is the suggestion outcome: either an existing
// category ID or a proposed new category, with a confidence score.
type CategorySuggestionResult struct {
	CategoryID  *uuid.UUID
	NewCategory *SuggestedNewCategory
	Confidence  float64
	Reasoning   string
}

// SuggestionService defines the interface for the category suggestion provider.
type SuggestionService interface {
	// SuggestCategory proposes a category for the given description.
	SuggestCategory(ctx context.Context, request *CategorySuggestionRequest) (*CategorySuggestionResult, error)

	// IsAvailable checks if the provider is configured.
	IsAvailable() bool
}
