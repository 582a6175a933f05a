// Package budget contains budget-related use cases.
package budget

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

// fakeBudgetRepository is an in-memory BudgetRepository for use case tests.
type fakeBudgetRepository struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepository) Create(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	budget, ok := r.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return budget, nil
}

func (r *fakeBudgetRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var result []*entity.Budget
	for _, budget := range r.budgets {
		if budget.UserID == userID {
			result = append(result, budget)
		}
	}
	return result, nil
}

func (r *fakeBudgetRepository) Update(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.budgets, id)
	return nil
}

func (r *fakeBudgetRepository) ExistsOverlapping(_ context.Context, userID, categoryID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, budget := range r.budgets {
		if budget.UserID != userID || budget.CategoryID != categoryID {
			continue
		}
		if excludeID != nil && budget.ID == *excludeID {
			continue
		}
		if !budget.StartDate.After(end) && !budget.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

// fakeCategoryRepository holds categories keyed by ID. findErr, when set,
// is returned by every FindByID call.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
	findErr    error
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepository) ExistsByUserNameAndType(_ context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType) (bool, error) {
	for _, category := range r.categories {
		if category.UserID == userID && category.Name == name && category.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

// fakeSpendingRepository answers SumExpensesByCategory with a fixed amount.
type fakeSpendingRepository struct {
	fakeTransactionRepo
	spent decimal.Decimal
}

func (r *fakeSpendingRepository) SumExpensesByCategory(_ context.Context, _, _ uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	return r.spent, nil
}

// fakeTransactionRepo provides no-op defaults for the unused methods.
type fakeTransactionRepo struct{}

func (fakeTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error { return nil }

func (fakeTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (fakeTransactionRepo) FindByUser(_ context.Context, _ uuid.UUID, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (fakeTransactionRepo) GetTotals(_ context.Context, _ uuid.UUID) (entity.BalanceTotals, error) {
	return entity.BalanceTotals{}, nil
}

func (fakeTransactionRepo) SumExpensesByCategory(_ context.Context, _, _ uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func TestClassifySeverity(t *testing.T) {
	ratio := DefaultNearLimitRatio
	allocated := decimal.NewFromInt(1000000)

	cases := []struct {
		name      string
		remaining int64
		want      entity.BudgetSeverity
	}{
		{"well under limit", 500000, entity.BudgetSeverityOK},
		{"just above threshold", 200001, entity.BudgetSeverityOK},
		{"exactly at threshold", 200000, entity.BudgetSeverityNearLimit},
		{"under threshold", 150000, entity.BudgetSeverityNearLimit},
		{"exactly exhausted", 0, entity.BudgetSeverityNearLimit},
		{"overspent", -1, entity.BudgetSeverityOver},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySeverity(decimal.NewFromInt(tc.remaining), allocated, ratio)
			if got != tc.want {
				t.Errorf("remaining %d: expected %s, got %s", tc.remaining, tc.want, got)
			}
		})
	}
}

func TestGetBudgetStatusUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	setup := func(allocated, spent int64) (*GetBudgetStatusUseCase, *entity.Budget) {
		budgetRepo := newFakeBudgetRepository()
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := &fakeSpendingRepository{spent: decimal.NewFromInt(spent)}

		category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "cart", "#22C55E")
		categoryRepo.categories[category.ID] = category

		budget := entity.NewBudget(userID, category.ID, "Groceries August",
			decimal.NewFromInt(allocated), entity.BudgetPeriodMonthly, start, end)
		budgetRepo.budgets[budget.ID] = budget

		uc := NewGetBudgetStatusUseCase(budgetRepo, categoryRepo, transactionRepo, DefaultNearLimitRatio)
		return uc, budget
	}

	t.Run("computes spent remaining and severity", func(t *testing.T) {
		uc, budget := setup(1000000, 850000)

		output, err := uc.Execute(context.Background(), GetBudgetStatusInput{
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		status := output.Status
		if !status.Spent.Equal(decimal.NewFromInt(850000)) {
			t.Errorf("expected spent 850000, got %s", status.Spent)
		}
		if !status.Remaining.Equal(decimal.NewFromInt(150000)) {
			t.Errorf("expected remaining 150000, got %s", status.Remaining)
		}
		if status.Severity != entity.BudgetSeverityNearLimit {
			t.Errorf("expected near_limit, got %s", status.Severity)
		}
		if status.Category == nil || status.Category.Name != "Groceries" {
			t.Error("expected category attached to status")
		}
	})

	t.Run("overspending flags over severity", func(t *testing.T) {
		uc, budget := setup(1000000, 1000001)

		output, err := uc.Execute(context.Background(), GetBudgetStatusInput{
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Status.Severity != entity.BudgetSeverityOver {
			t.Errorf("expected over, got %s", output.Status.Severity)
		}
	})

	t.Run("no spending is ok severity", func(t *testing.T) {
		uc, budget := setup(1000000, 0)

		output, err := uc.Execute(context.Background(), GetBudgetStatusInput{
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Status.Severity != entity.BudgetSeverityOK {
			t.Errorf("expected ok, got %s", output.Status.Severity)
		}
	})

	t.Run("deleted category still yields a status", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		categoryRepo := newFakeCategoryRepository()
		transactionRepo := &fakeSpendingRepository{spent: decimal.NewFromInt(850000)}

		budget := entity.NewBudget(userID, uuid.New(), "Groceries August",
			decimal.NewFromInt(1000000), entity.BudgetPeriodMonthly, start, end)
		budgetRepo.budgets[budget.ID] = budget

		uc := NewGetBudgetStatusUseCase(budgetRepo, categoryRepo, transactionRepo, DefaultNearLimitRatio)
		output, err := uc.Execute(context.Background(), GetBudgetStatusInput{
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Status.Category != nil {
			t.Errorf("expected no category on status, got %v", output.Status.Category)
		}
		if output.Status.Severity != entity.BudgetSeverityNearLimit {
			t.Errorf("expected near_limit, got %s", output.Status.Severity)
		}
	})

	t.Run("category lookup failure aborts the computation", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepository()
		categoryRepo := newFakeCategoryRepository()
		categoryRepo.findErr = errors.New("connection reset by peer")
		transactionRepo := &fakeSpendingRepository{spent: decimal.NewFromInt(850000)}

		category := entity.NewCategory(userID, "Groceries", entity.CategoryTypeExpense, "cart", "#22C55E")
		categoryRepo.categories[category.ID] = category

		budget := entity.NewBudget(userID, category.ID, "Groceries August",
			decimal.NewFromInt(1000000), entity.BudgetPeriodMonthly, start, end)
		budgetRepo.budgets[budget.ID] = budget

		uc := NewGetBudgetStatusUseCase(budgetRepo, categoryRepo, transactionRepo, DefaultNearLimitRatio)
		output, err := uc.Execute(context.Background(), GetBudgetStatusInput{
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if err == nil {
			t.Fatalf("expected error, got status %+v", output.Status)
		}
		if !errors.Is(err, categoryRepo.findErr) {
			t.Errorf("expected wrapped lookup error, got %v", err)
		}
	})

	t.Run("rejects unknown budget", func(t *testing.T) {
		uc, _ := setup(1000000, 0)

		_, err := uc.Execute(context.Background(), GetBudgetStatusInput{
			BudgetID: uuid.New(),
			UserID:   userID,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("expected BudgetError, got %v", err)
		}
		if budgetErr.Code != domainerror.ErrCodeBudgetNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetNotFound, budgetErr.Code)
		}
	})

	t.Run("rejects another user's budget", func(t *testing.T) {
		uc, budget := setup(1000000, 0)

		_, err := uc.Execute(context.Background(), GetBudgetStatusInput{
			BudgetID: budget.ID,
			UserID:   uuid.New(),
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("expected BudgetError, got %v", err)
		}
		if budgetErr.Code != domainerror.ErrCodeUnauthorizedBudgetAccess {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnauthorizedBudgetAccess, budgetErr.Code)
		}
	})
}
