// Package balance contains the balance derivation use case.
package balance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// ComputeBalanceInput represents the input for balance computation.
type ComputeBalanceInput struct {
	UserID uuid.UUID
}

// ComputeBalanceOutput represents the output of balance computation.
type ComputeBalanceOutput struct {
	Balance      decimal.Decimal
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// ComputeBalanceUseCase derives the user's current net cash position from the
// full transaction history. The figure is recomputed on every call and never
// cached; a stale balance is unacceptable for money the user acts on.
type ComputeBalanceUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewComputeBalanceUseCase creates a new ComputeBalanceUseCase instance.
func NewComputeBalanceUseCase(transactionRepo adapter.TransactionRepository) *ComputeBalanceUseCase {
	return &ComputeBalanceUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the balance computation. An empty transaction history
// yields a zero balance; summation is order-insensitive.
func (uc *ComputeBalanceUseCase) Execute(ctx context.Context, input ComputeBalanceInput) (*ComputeBalanceOutput, error) {
	totals, err := uc.transactionRepo.GetTotals(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	return &ComputeBalanceOutput{
		Balance:      totals.Net(),
		IncomeTotal:  totals.Income,
		ExpenseTotal: totals.Expense,
	}, nil
}
