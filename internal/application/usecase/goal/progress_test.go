// Package goal contains goal-related use cases.
package goal

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func newTestGoal(target, current int64, deadline time.Time) *entity.Goal {
	return entity.NewGoal(
		uuid.New(),
		"Vacation fund",
		"plane",
		decimal.NewFromInt(target),
		decimal.NewFromInt(current),
		deadline,
	)
}

func TestProgressPercent(t *testing.T) {
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("floors the percentage", func(t *testing.T) {
		g := newTestGoal(3000, 1000, deadline)

		// 1000/3000 = 33.33...%
		if got := ProgressPercent(g); got != 33 {
			t.Errorf("expected 33, got %d", got)
		}
	})

	t.Run("zero current amount is zero percent", func(t *testing.T) {
		g := newTestGoal(3000, 0, deadline)

		if got := ProgressPercent(g); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("full target is one hundred percent", func(t *testing.T) {
		g := newTestGoal(3000, 3000, deadline)

		if got := ProgressPercent(g); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})

	t.Run("clamps above one hundred", func(t *testing.T) {
		g := newTestGoal(3000, 4500, deadline)

		if got := ProgressPercent(g); got != 100 {
			t.Errorf("expected 100, got %d", got)
		}
	})

	t.Run("non-positive target is zero percent", func(t *testing.T) {
		g := newTestGoal(0, 500, deadline)

		if got := ProgressPercent(g); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}

func TestDaysRemaining(t *testing.T) {
	deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	g := newTestGoal(1000, 0, deadline)

	t.Run("counts whole calendar days", func(t *testing.T) {
		today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		if got := DaysRemaining(g, today); got != 29 {
			t.Errorf("expected 29, got %d", got)
		}
	})

	t.Run("insensitive to time of day", func(t *testing.T) {
		morning := time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC)
		night := time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC)

		if DaysRemaining(g, morning) != DaysRemaining(g, night) {
			t.Errorf("expected same result at %v and %v", morning, night)
		}
	})

	t.Run("deadline today is zero", func(t *testing.T) {
		today := time.Date(2026, 9, 30, 14, 0, 0, 0, time.UTC)

		if got := DaysRemaining(g, today); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("past deadline is negative", func(t *testing.T) {
		today := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

		if got := DaysRemaining(g, today); got != -2 {
			t.Errorf("expected -2, got %d", got)
		}
	})
}

func TestRequiredDailySavings(t *testing.T) {
	t.Run("divides remaining by days left", func(t *testing.T) {
		deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		today := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
		g := newTestGoal(10000000, 1000000, deadline)

		got, err := RequiredDailySavings(g, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 9,000,000 remaining over 30 days
		want := decimal.NewFromInt(300000)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("completed goal requires nothing", func(t *testing.T) {
		deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		today := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
		g := newTestGoal(5000, 5000, deadline)

		got, err := RequiredDailySavings(g, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})

	t.Run("fails when deadline is today and goal incomplete", func(t *testing.T) {
		deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		today := time.Date(2026, 9, 30, 8, 0, 0, 0, time.UTC)
		g := newTestGoal(5000, 1000, deadline)

		_, err := RequiredDailySavings(g, today)
		if !errors.Is(err, domainerror.ErrDeadlinePassed) {
			t.Errorf("expected ErrDeadlinePassed, got %v", err)
		}
	})

	t.Run("fails when deadline has passed", func(t *testing.T) {
		deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		today := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
		g := newTestGoal(5000, 1000, deadline)

		_, err := RequiredDailySavings(g, today)

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) {
			t.Fatalf("expected GoalError, got %v", err)
		}
		if goalErr.Code != domainerror.ErrCodeDeadlinePassed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDeadlinePassed, goalErr.Code)
		}
	})
}
