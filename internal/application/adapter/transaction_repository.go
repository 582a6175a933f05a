// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID *uuid.UUID
	Type       *entity.TransactionType
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create inserts a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves a user's transactions matching the filter,
	// newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// GetTotals aggregates income and expense totals over the user's full
	// transaction history. An empty history yields zero totals.
	GetTotals(ctx context.Context, userID uuid.UUID) (entity.BalanceTotals, error)

	// SumExpensesByCategory sums expense transactions for a category within
	// the inclusive date range [start, end].
	SumExpensesByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
}
