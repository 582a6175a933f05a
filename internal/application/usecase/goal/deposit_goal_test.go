// Package goal contains goal-related use cases.
package goal

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

// fakeGoalRepository is an in-memory GoalRepository for use case tests.
type fakeGoalRepository struct {
	goals           map[uuid.UUID]*entity.Goal
	applyDepositErr error
	applied         []*entity.Transaction
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			copied := *goal
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepository) ApplyDeposit(_ context.Context, goal *entity.Goal, contribution *entity.Transaction) error {
	if r.applyDepositErr != nil {
		return r.applyDepositErr
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	r.applied = append(r.applied, contribution)
	return nil
}

// fakeTransactionRepository serves the balance check with fixed totals.
type fakeTransactionRepository struct {
	totals    entity.BalanceTotals
	totalsErr error
}

func (r *fakeTransactionRepository) Create(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepository) FindByUser(_ context.Context, _ uuid.UUID, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (r *fakeTransactionRepository) GetTotals(_ context.Context, _ uuid.UUID) (entity.BalanceTotals, error) {
	if r.totalsErr != nil {
		return entity.BalanceTotals{}, r.totalsErr
	}
	return r.totals, nil
}

func (r *fakeTransactionRepository) SumExpensesByCategory(_ context.Context, _, _ uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
}

func expectGoalErrorCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != code {
		t.Errorf("expected code %s, got %s", code, goalErr.Code)
	}
}

func TestDepositGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	setup := func(target, current int64) (*DepositGoalUseCase, *fakeGoalRepository, *fakeTransactionRepository, *entity.Goal) {
		goalRepo := newFakeGoalRepository()
		transactionRepo := &fakeTransactionRepository{
			totals: entity.BalanceTotals{
				Income:  decimal.NewFromInt(100000),
				Expense: decimal.NewFromInt(20000),
			},
		}
		g := entity.NewGoal(userID, "Emergency fund", "shield",
			decimal.NewFromInt(target), decimal.NewFromInt(current), deadline)
		goalRepo.goals[g.ID] = g

		uc := NewDepositGoalUseCase(goalRepo, transactionRepo, fixedNow)
		return uc, goalRepo, transactionRepo, g
	}

	t.Run("applies deposit and records contribution", func(t *testing.T) {
		uc, goalRepo, _, g := setup(50000, 10000)

		output, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(5000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected current amount 15000, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected goal to stay active, got %s", output.Goal.Status)
		}
		if output.ProgressPercent != 30 {
			t.Errorf("expected 30 percent, got %d", output.ProgressPercent)
		}

		if len(goalRepo.applied) != 1 {
			t.Fatalf("expected one contribution, got %d", len(goalRepo.applied))
		}
		contribution := goalRepo.applied[0]
		if contribution.Type != entity.TransactionTypeExpense {
			t.Errorf("expected expense contribution, got %s", contribution.Type)
		}
		if !contribution.Amount.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected contribution amount 5000, got %s", contribution.Amount)
		}
	})

	t.Run("deposit reaching target completes the goal", func(t *testing.T) {
		uc, _, _, g := setup(50000, 45000)

		output, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(5000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Status != entity.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", output.Goal.Status)
		}
		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected current amount 50000, got %s", output.Goal.CurrentAmount)
		}
		if output.ProgressPercent != 100 {
			t.Errorf("expected 100 percent, got %d", output.ProgressPercent)
		}
	})

	t.Run("overshooting deposit is clamped to target", func(t *testing.T) {
		uc, _, _, g := setup(50000, 48000)

		output, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(10000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.CurrentAmount.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected current amount clamped to 50000, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Status != entity.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", output.Goal.Status)
		}
	})

	t.Run("rejects non-positive amount before loading the goal", func(t *testing.T) {
		uc, _, _, g := setup(50000, 10000)

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.Zero,
		})
		expectGoalErrorCode(t, err, domainerror.ErrCodeInvalidDepositAmount)
	})

	t.Run("rejects unknown goal", func(t *testing.T) {
		uc, _, _, _ := setup(50000, 10000)

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: uuid.New(),
			UserID: userID,
			Amount: decimal.NewFromInt(100),
		})
		expectGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})

	t.Run("rejects another user's goal", func(t *testing.T) {
		uc, _, _, g := setup(50000, 10000)

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: uuid.New(),
			Amount: decimal.NewFromInt(100),
		})
		expectGoalErrorCode(t, err, domainerror.ErrCodeUnauthorizedGoalAccess)
	})

	t.Run("rejects deposit to a paused goal", func(t *testing.T) {
		uc, goalRepo, _, g := setup(50000, 10000)
		g.Status = entity.GoalStatusPaused
		goalRepo.goals[g.ID] = g

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(100),
		})
		expectGoalErrorCode(t, err, domainerror.ErrCodeGoalNotActive)
	})

	t.Run("rejects deposit to a completed goal", func(t *testing.T) {
		uc, goalRepo, _, g := setup(50000, 50000)
		g.Status = entity.GoalStatusCompleted
		goalRepo.goals[g.ID] = g

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(100),
		})
		expectGoalErrorCode(t, err, domainerror.ErrCodeGoalNotActive)
	})

	t.Run("rejects deposit exceeding current balance", func(t *testing.T) {
		uc, goalRepo, transactionRepo, g := setup(500000, 10000)
		transactionRepo.totals = entity.BalanceTotals{
			Income:  decimal.NewFromInt(1000),
			Expense: decimal.NewFromInt(500),
		}

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(501),
		})
		expectGoalErrorCode(t, err, domainerror.ErrCodeInsufficientBalance)

		// Failed check leaves the goal untouched.
		stored := goalRepo.goals[g.ID]
		if !stored.CurrentAmount.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected current amount unchanged at 10000, got %s", stored.CurrentAmount)
		}
		if len(goalRepo.applied) != 0 {
			t.Errorf("expected no contribution, got %d", len(goalRepo.applied))
		}
	})

	t.Run("deposit equal to balance is allowed", func(t *testing.T) {
		uc, _, transactionRepo, g := setup(500000, 10000)
		transactionRepo.totals = entity.BalanceTotals{
			Income:  decimal.NewFromInt(1000),
			Expense: decimal.NewFromInt(500),
		}

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("storage failure surfaces and changes nothing", func(t *testing.T) {
		uc, goalRepo, _, g := setup(50000, 10000)
		goalRepo.applyDepositErr = errors.New("connection reset")

		_, err := uc.Execute(context.Background(), DepositGoalInput{
			GoalID: g.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(100),
		})
		if err == nil {
			t.Fatal("expected error")
		}

		stored := goalRepo.goals[g.ID]
		if !stored.CurrentAmount.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected current amount unchanged at 10000, got %s", stored.CurrentAmount)
		}
	})
}
