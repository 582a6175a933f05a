// Package persistence implements repository interfaces for database operations.
package persistence

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

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, transactionType entity.TransactionType, amount int64, date time.Time, categoryID *uuid.UUID) *entity.Transaction {
	t.Helper()

	transaction := entity.NewTransaction(userID, transactionType, decimal.NewFromInt(amount), categoryID, date, "", "")
	if err := repo.Create(context.Background(), transaction); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return transaction
}

func TestTransactionRepository_GetTotals(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	t.Run("empty history yields zero totals", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.Income.IsZero() || !totals.Expense.IsZero() {
			t.Errorf("expected zero totals, got income %s expense %s", totals.Income, totals.Expense)
		}
	})

	t.Run("sums per type regardless of insertion order", func(t *testing.T) {
		seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 300, date, nil)
		seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 1000, date.AddDate(0, 0, 1), nil)
		seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 200, date.AddDate(0, 0, -3), nil)
		seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 500, date, nil)

		totals, err := repo.GetTotals(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.Income.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected income 1500, got %s", totals.Income)
		}
		if !totals.Expense.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected expense 500, got %s", totals.Expense)
		}
		if !totals.Net().Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected net 1000, got %s", totals.Net())
		}
	})

	t.Run("excludes other users", func(t *testing.T) {
		otherUser := uuid.New()
		seedTransaction(t, repo, otherUser, entity.TransactionTypeIncome, 99999, date, nil)

		totals, err := repo.GetTotals(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.Income.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected income 1500, got %s", totals.Income)
		}
	})

	t.Run("excludes soft-deleted transactions", func(t *testing.T) {
		deleted := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 700, date, nil)
		if err := repo.Delete(ctx, deleted.ID); err != nil {
			t.Fatalf("failed to delete transaction: %v", err)
		}

		totals, err := repo.GetTotals(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.Income.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected income 1500 after soft delete, got %s", totals.Income)
		}
	})
}

func TestTransactionRepository_SumExpensesByCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	otherCategoryID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 100, start, &categoryID)
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 250, end, &categoryID)
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 75, start.AddDate(0, 0, 14), &categoryID)
	// Outside the range
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 999, start.AddDate(0, 0, -1), &categoryID)
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 999, end.AddDate(0, 0, 1), &categoryID)
	// Wrong category and wrong type
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 999, start, &otherCategoryID)
	seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 999, start, &categoryID)

	t.Run("sums expenses inside inclusive range", func(t *testing.T) {
		sum, err := repo.SumExpensesByCategory(ctx, userID, categoryID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(decimal.NewFromInt(425)) {
			t.Errorf("expected 425, got %s", sum)
		}
	})

	t.Run("no matches yields zero", func(t *testing.T) {
		sum, err := repo.SumExpensesByCategory(ctx, userID, uuid.New(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.IsZero() {
			t.Errorf("expected zero, got %s", sum)
		}
	})
}

func TestTransactionRepository_FindByUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	older := seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 10,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), nil)
	newer := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 20,
		time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), &categoryID)

	t.Run("returns newest first", func(t *testing.T) {
		transactions, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].ID != newer.ID {
			t.Error("expected newest transaction first")
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
		transactions, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{From: &from})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].ID != newer.ID {
			t.Errorf("expected only the newer transaction, got %d", len(transactions))
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		transactions, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{CategoryID: &categoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].ID != newer.ID {
			t.Errorf("expected only the categorized transaction, got %d", len(transactions))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		transactions, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{Type: &expense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].ID != older.ID {
			t.Errorf("expected only the expense transaction, got %d", len(transactions))
		}
	})
}

func TestTransactionRepository_UpdateDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	t.Run("update of missing transaction reports not found", func(t *testing.T) {
		transaction := entity.NewTransaction(userID, entity.TransactionTypeExpense, decimal.NewFromInt(10), nil, date, "", "")
		err := repo.Update(ctx, transaction)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("delete of missing transaction reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("update persists changes", func(t *testing.T) {
		transaction := seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 10, date, nil)
		transaction.Amount = decimal.NewFromInt(42)
		transaction.Note = "corrected"

		if err := repo.Update(ctx, transaction); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.FindByID(ctx, transaction.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.Amount.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected amount 42, got %s", stored.Amount)
		}
		if stored.Note != "corrected" {
			t.Errorf("expected note 'corrected', got %q", stored.Note)
		}
	})
}
