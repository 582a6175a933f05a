// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func TestGoalRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("create and find round trip", func(t *testing.T) {
		g := entity.NewGoal(userID, "House deposit", "home",
			decimal.NewFromInt(5000000), decimal.NewFromInt(250000), deadline)
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindByID(ctx, g.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Name != "House deposit" {
			t.Errorf("expected name 'House deposit', got %q", stored.Name)
		}
		if !stored.CurrentAmount.Equal(decimal.NewFromInt(250000)) {
			t.Errorf("expected current amount 250000, got %s", stored.CurrentAmount)
		}
		if stored.Status != entity.GoalStatusActive {
			t.Errorf("expected active status, got %s", stored.Status)
		}
	})

	t.Run("find missing goal reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("update persists status and notified flag", func(t *testing.T) {
		g := entity.NewGoal(userID, "Bike", "bike",
			decimal.NewFromInt(100000), decimal.NewFromInt(100000), deadline)
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		g.Status = entity.GoalStatusCompleted
		g.CompletionNotified = true
		if err := repo.Update(ctx, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindByID(ctx, g.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != entity.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", stored.Status)
		}
		if !stored.CompletionNotified {
			t.Error("expected completion notified flag persisted")
		}
	})

	t.Run("find by user returns only that user's goals", func(t *testing.T) {
		otherUser := uuid.New()
		other := entity.NewGoal(otherUser, "Boat", "anchor",
			decimal.NewFromInt(900000), decimal.Zero, deadline)
		if err := repo.Create(ctx, other); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		goals, err := repo.FindByUser(ctx, otherUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goals) != 1 || goals[0].ID != other.ID {
			t.Errorf("expected exactly the other user's goal, got %d goals", len(goals))
		}
	})
}

func TestGoalRepository_ApplyDeposit(t *testing.T) {
	db := openTestDB(t)
	goalRepo := NewGoalRepository(db)
	transactionRepo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("commits goal and contribution together", func(t *testing.T) {
		g := entity.NewGoal(userID, "Camera", "camera",
			decimal.NewFromInt(80000), decimal.NewFromInt(10000), deadline)
		if err := goalRepo.Create(ctx, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		g.CurrentAmount = decimal.NewFromInt(15000)
		contribution := entity.NewTransaction(userID, entity.TransactionTypeExpense,
			decimal.NewFromInt(5000), nil, deadline.AddDate(0, -2, 0), "Savings contribution: Camera", "")

		if err := goalRepo.ApplyDeposit(ctx, g, contribution); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		storedGoal, err := goalRepo.FindByID(ctx, g.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !storedGoal.CurrentAmount.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected current amount 15000, got %s", storedGoal.CurrentAmount)
		}

		storedContribution, err := transactionRepo.FindByID(ctx, contribution.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !storedContribution.Amount.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected contribution amount 5000, got %s", storedContribution.Amount)
		}
	})

	t.Run("rolls back the goal when the contribution insert fails", func(t *testing.T) {
		g := entity.NewGoal(userID, "Guitar", "music",
			decimal.NewFromInt(60000), decimal.NewFromInt(20000), deadline)
		if err := goalRepo.Create(ctx, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// A pre-existing row with the same primary key forces the insert to
		// fail inside the transaction.
		conflicting := entity.NewTransaction(userID, entity.TransactionTypeExpense,
			decimal.NewFromInt(1), nil, deadline.AddDate(0, -2, 0), "", "")
		if err := transactionRepo.Create(ctx, conflicting); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		g.CurrentAmount = decimal.NewFromInt(99999)
		contribution := entity.NewTransaction(userID, entity.TransactionTypeExpense,
			decimal.NewFromInt(500), nil, deadline.AddDate(0, -2, 0), "", "")
		contribution.ID = conflicting.ID

		if err := goalRepo.ApplyDeposit(ctx, g, contribution); err == nil {
			t.Fatal("expected error from conflicting contribution")
		}

		storedGoal, err := goalRepo.FindByID(ctx, g.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !storedGoal.CurrentAmount.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("expected current amount unchanged at 20000, got %s", storedGoal.CurrentAmount)
		}
	})
}
