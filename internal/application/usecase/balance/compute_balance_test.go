// Package balance contains the balance derivation use case.
package balance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

type stubTransactionRepository struct {
	totals    entity.BalanceTotals
	totalsErr error
}

func (r *stubTransactionRepository) Create(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *stubTransactionRepository) FindByUser(_ context.Context, _ uuid.UUID, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *stubTransactionRepository) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (r *stubTransactionRepository) GetTotals(_ context.Context, _ uuid.UUID) (entity.BalanceTotals, error) {
	if r.totalsErr != nil {
		return entity.BalanceTotals{}, r.totalsErr
	}
	return r.totals, nil
}

func (r *stubTransactionRepository) SumExpensesByCategory(_ context.Context, _, _ uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func TestComputeBalanceUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("balance is income minus expense", func(t *testing.T) {
		uc := NewComputeBalanceUseCase(&stubTransactionRepository{
			totals: entity.BalanceTotals{
				Income:  decimal.NewFromInt(350000),
				Expense: decimal.NewFromInt(125075),
			},
		})

		output, err := uc.Execute(context.Background(), ComputeBalanceInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Balance.Equal(decimal.NewFromInt(224925)) {
			t.Errorf("expected balance 224925, got %s", output.Balance)
		}
		if !output.IncomeTotal.Equal(decimal.NewFromInt(350000)) {
			t.Errorf("expected income 350000, got %s", output.IncomeTotal)
		}
		if !output.ExpenseTotal.Equal(decimal.NewFromInt(125075)) {
			t.Errorf("expected expense 125075, got %s", output.ExpenseTotal)
		}
	})

	t.Run("empty history yields zero balance", func(t *testing.T) {
		uc := NewComputeBalanceUseCase(&stubTransactionRepository{})

		output, err := uc.Execute(context.Background(), ComputeBalanceInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", output.Balance)
		}
	})

	t.Run("expenses above income go negative", func(t *testing.T) {
		uc := NewComputeBalanceUseCase(&stubTransactionRepository{
			totals: entity.BalanceTotals{
				Income:  decimal.NewFromInt(1000),
				Expense: decimal.NewFromInt(2500),
			},
		})

		output, err := uc.Execute(context.Background(), ComputeBalanceInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Balance.Equal(decimal.NewFromInt(-1500)) {
			t.Errorf("expected balance -1500, got %s", output.Balance)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		uc := NewComputeBalanceUseCase(&stubTransactionRepository{
			totalsErr: errors.New("connection reset"),
		})

		if _, err := uc.Execute(context.Background(), ComputeBalanceInput{UserID: userID}); err == nil {
			t.Fatal("expected error")
		}
	})
}
