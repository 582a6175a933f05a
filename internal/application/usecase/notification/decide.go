// Package notification contains the notification dispatch policy.
package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// DefaultLowBalanceFloor is the balance below which a low-balance event
// fires, in currency minor units.
var DefaultLowBalanceFloor = decimal.NewFromInt(100000)

// DefaultDeadlineWindowDays is the approaching-deadline window for goals.
const DefaultDeadlineWindowDays = 7

// PolicyConfig holds the thresholds driving the dispatch policy.
type PolicyConfig struct {
	LowBalanceFloor    decimal.Decimal
	DeadlineWindowDays int
}

// DefaultPolicyConfig returns the default policy thresholds.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		LowBalanceFloor:    DefaultLowBalanceFloor,
		DeadlineWindowDays: DefaultDeadlineWindowDays,
	}
}

// DecideInput is the materialized state the policy evaluates. The caller
// gathers it; Decide itself performs no I/O.
type DecideInput struct {
	UserID  uuid.UUID
	Balance decimal.Decimal
	Budgets []*entity.BudgetStatus
	Goals   []*entity.Goal
	Now     time.Time
}

// Decide evaluates the dispatch policy and returns the events that should be
// delivered. It only produces events; delivery (channels, sound, vibration)
// is the consuming collaborator's responsibility.
func Decide(cfg PolicyConfig, input DecideInput) []entity.NotificationEvent {
	var events []entity.NotificationEvent

	if input.Balance.LessThan(cfg.LowBalanceFloor) {
		balance := input.Balance
		events = append(events, entity.NotificationEvent{
			Type:      entity.NotificationLowBalance,
			UserID:    input.UserID,
			EmittedAt: input.Now,
			Balance:   &balance,
		})
	}

	for _, status := range input.Budgets {
		if status.Severity != entity.BudgetSeverityOver {
			continue
		}
		budgetID := status.Budget.ID
		remaining := status.Remaining
		event := entity.NotificationEvent{
			Type:      entity.NotificationBudgetOverflow,
			UserID:    input.UserID,
			EmittedAt: input.Now,
			BudgetID:  &budgetID,
			Remaining: &remaining,
		}
		if status.Category != nil {
			event.CategoryName = status.Category.Name
		}
		events = append(events, event)
	}

	for _, goal := range input.Goals {
		switch goal.Status {
		case entity.GoalStatusCompleted:
			if goal.CompletionNotified {
				continue
			}
			goalID := goal.ID
			events = append(events, entity.NotificationEvent{
				Type:      entity.NotificationGoalCompleted,
				UserID:    input.UserID,
				EmittedAt: input.Now,
				GoalID:    &goalID,
				GoalName:  goal.Name,
			})
		case entity.GoalStatusActive:
			days := valueobject.DaysBetween(input.Now, goal.Deadline)
			if days > 0 && days <= cfg.DeadlineWindowDays {
				goalID := goal.ID
				daysLeft := days
				events = append(events, entity.NotificationEvent{
					Type:      entity.NotificationGoalDeadlineSoon,
					UserID:    input.UserID,
					EmittedAt: input.Now,
					GoalID:    &goalID,
					GoalName:  goal.Name,
					DaysLeft:  &daysLeft,
				})
			}
		}
	}

	return events
}
