// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationType identifies the kind of notification event.
type NotificationType string

const (
	NotificationLowBalance       NotificationType = "low_balance"
	NotificationBudgetOverflow   NotificationType = "budget_overflow"
	NotificationGoalCompleted    NotificationType = "goal_completed"
	NotificationGoalDeadlineSoon NotificationType = "goal_deadline_approaching"
)

// NotificationEvent is a structured event produced by the dispatch policy.
// The engine only emits these; presenting them (sound, channels, badges) is
// the delivery collaborator's concern. Fields beyond Type, UserID and
// EmittedAt are populated per event kind.
type NotificationEvent struct {
	Type      NotificationType `json:"type"`
	UserID    uuid.UUID        `json:"user_id"`
	EmittedAt time.Time        `json:"emitted_at"`

	// LowBalance
	Balance *decimal.Decimal `json:"balance,omitempty"`

	// BudgetOverflow
	BudgetID     *uuid.UUID       `json:"budget_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	Remaining    *decimal.Decimal `json:"remaining,omitempty"`

	// GoalCompleted / GoalDeadlineApproaching
	GoalID   *uuid.UUID `json:"goal_id,omitempty"`
	GoalName string     `json:"goal_name,omitempty"`
	DaysLeft *int       `json:"days_left,omitempty"`
}
