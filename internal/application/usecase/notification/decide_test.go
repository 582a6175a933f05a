// Package notification contains the notification dispatch policy.
package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func eventsOfType(events []entity.NotificationEvent, eventType entity.NotificationType) []entity.NotificationEvent {
	var result []entity.NotificationEvent
	for _, event := range events {
		if event.Type == eventType {
			result = append(result, event)
		}
	}
	return result
}

func TestDecide_LowBalance(t *testing.T) {
	cfg := DefaultPolicyConfig()
	userID := uuid.New()
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)

	t.Run("fires below the floor", func(t *testing.T) {
		events := Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: decimal.NewFromInt(99999),
			Now:     now,
		})

		lowBalance := eventsOfType(events, entity.NotificationLowBalance)
		if len(lowBalance) != 1 {
			t.Fatalf("expected one low balance event, got %d", len(lowBalance))
		}
		if lowBalance[0].Balance == nil || !lowBalance[0].Balance.Equal(decimal.NewFromInt(99999)) {
			t.Error("expected event to carry the balance")
		}
	})

	t.Run("balance exactly at the floor does not fire", func(t *testing.T) {
		events := Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: decimal.NewFromInt(100000),
			Now:     now,
		})

		if len(eventsOfType(events, entity.NotificationLowBalance)) != 0 {
			t.Error("expected no low balance event at the floor")
		}
	})

	t.Run("negative balance fires", func(t *testing.T) {
		events := Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: decimal.NewFromInt(-500),
			Now:     now,
		})

		if len(eventsOfType(events, entity.NotificationLowBalance)) != 1 {
			t.Error("expected low balance event for negative balance")
		}
	})
}

func TestDecide_BudgetOverflow(t *testing.T) {
	cfg := DefaultPolicyConfig()
	userID := uuid.New()
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	balance := decimal.NewFromInt(5000000)

	makeStatus := func(severity entity.BudgetSeverity, remaining int64) *entity.BudgetStatus {
		budget := entity.NewBudget(userID, uuid.New(), "Dining",
			decimal.NewFromInt(100000), entity.BudgetPeriodMonthly,
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
		return &entity.BudgetStatus{
			Budget:    budget,
			Category:  entity.NewCategory(userID, "Dining", entity.CategoryTypeExpense, "utensils", "#F97316"),
			Spent:     decimal.NewFromInt(100000 - remaining),
			Remaining: decimal.NewFromInt(remaining),
			Severity:  severity,
		}
	}

	t.Run("fires only for overspent budgets", func(t *testing.T) {
		events := Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: balance,
			Budgets: []*entity.BudgetStatus{
				makeStatus(entity.BudgetSeverityOK, 50000),
				makeStatus(entity.BudgetSeverityNearLimit, 10000),
				makeStatus(entity.BudgetSeverityOver, -2500),
			},
			Now: now,
		})

		overflow := eventsOfType(events, entity.NotificationBudgetOverflow)
		if len(overflow) != 1 {
			t.Fatalf("expected one overflow event, got %d", len(overflow))
		}
		if overflow[0].Remaining == nil || !overflow[0].Remaining.Equal(decimal.NewFromInt(-2500)) {
			t.Error("expected event to carry the negative remaining amount")
		}
		if overflow[0].CategoryName != "Dining" {
			t.Errorf("expected category name Dining, got %q", overflow[0].CategoryName)
		}
	})

	t.Run("each overspent budget fires separately", func(t *testing.T) {
		events := Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: balance,
			Budgets: []*entity.BudgetStatus{
				makeStatus(entity.BudgetSeverityOver, -100),
				makeStatus(entity.BudgetSeverityOver, -200),
			},
			Now: now,
		})

		if got := len(eventsOfType(events, entity.NotificationBudgetOverflow)); got != 2 {
			t.Errorf("expected two overflow events, got %d", got)
		}
	})
}

func TestDecide_Goals(t *testing.T) {
	cfg := DefaultPolicyConfig()
	userID := uuid.New()
	now := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	balance := decimal.NewFromInt(5000000)

	makeGoal := func(status entity.GoalStatus, deadline time.Time) *entity.Goal {
		g := entity.NewGoal(userID, "New laptop", "laptop",
			decimal.NewFromInt(500000), decimal.Zero, deadline)
		g.Status = status
		return g
	}

	t.Run("completed goal fires once", func(t *testing.T) {
		g := makeGoal(entity.GoalStatusCompleted, now.AddDate(0, 1, 0))

		events := Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: balance,
			Goals:   []*entity.Goal{g},
			Now:     now,
		})
		if len(eventsOfType(events, entity.NotificationGoalCompleted)) != 1 {
			t.Fatal("expected one completion event")
		}

		// After the emission has been recorded the event never repeats.
		g.CompletionNotified = true
		events = Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: balance,
			Goals:   []*entity.Goal{g},
			Now:     now,
		})
		if len(eventsOfType(events, entity.NotificationGoalCompleted)) != 0 {
			t.Error("expected no repeat completion event")
		}
	})

	t.Run("deadline window boundaries", func(t *testing.T) {
		cases := []struct {
			name     string
			daysOut  int
			expected int
		}{
			{"deadline today does not fire", 0, 0},
			{"one day out fires", 1, 1},
			{"seven days out fires", 7, 1},
			{"eight days out does not fire", 8, 0},
			{"overdue does not fire", -1, 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				g := makeGoal(entity.GoalStatusActive, now.AddDate(0, 0, tc.daysOut))

				events := Decide(cfg, DecideInput{
					UserID:  userID,
					Balance: balance,
					Goals:   []*entity.Goal{g},
					Now:     now,
				})
				if got := len(eventsOfType(events, entity.NotificationGoalDeadlineSoon)); got != tc.expected {
					t.Errorf("expected %d deadline events, got %d", tc.expected, got)
				}
			})
		}
	})

	t.Run("paused goal never fires deadline", func(t *testing.T) {
		g := makeGoal(entity.GoalStatusPaused, now.AddDate(0, 0, 3))

		events := Decide(cfg, DecideInput{
			UserID:  userID,
			Balance: balance,
			Goals:   []*entity.Goal{g},
			Now:     now,
		})
		if len(eventsOfType(events, entity.NotificationGoalDeadlineSoon)) != 0 {
			t.Error("expected no deadline event for paused goal")
		}
	})
}

func TestDecide_QuietState(t *testing.T) {
	cfg := DefaultPolicyConfig()

	events := Decide(cfg, DecideInput{
		UserID:  uuid.New(),
		Balance: decimal.NewFromInt(5000000),
		Now:     time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
	})

	if len(events) != 0 {
		t.Errorf("expected no events for a quiet account, got %d", len(events))
	}
}
