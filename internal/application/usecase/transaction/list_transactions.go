// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions. Nil
// filter fields are ignored.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	From       *time.Time
	To         *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := adapter.TransactionFilter{
		CategoryID: input.CategoryID,
		Type:       input.Type,
	}
	if input.From != nil {
		from := valueobject.NormalizeDate(*input.From)
		filter.From = &from
	}
	if input.To != nil {
		to := valueobject.NormalizeDate(*input.To)
		filter.To = &to
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// Resolve categories once per listing rather than per row.
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	result := make([]*entity.TransactionWithCategory, len(transactions))
	for i, t := range transactions {
		item := &entity.TransactionWithCategory{Transaction: t}
		if t.CategoryID != nil {
			item.Category = byID[*t.CategoryID]
		}
		result[i] = item
	}

	return &ListTransactionsOutput{
		Transactions: result,
	}, nil
}
