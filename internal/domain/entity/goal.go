// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Goal represents a savings target with a deadline and running progress.
// CurrentAmount is always within [0, TargetAmount]; reaching TargetAmount
// transitions the goal to completed, which is terminal for deposits.
type Goal struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	Icon               string
	TargetAmount       decimal.Decimal
	CurrentAmount      decimal.Decimal
	Deadline           time.Time // Calendar date, normalized to midnight UTC
	Status             GoalStatus
	CompletionNotified bool // Set once a completion event has been emitted
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewGoal creates a new Goal entity in the active state.
func NewGoal(userID uuid.UUID, name, icon string, targetAmount, initialAmount decimal.Decimal, deadline time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Icon:          icon,
		TargetAmount:  targetAmount,
		CurrentAmount: initialAmount,
		Deadline:      deadline,
		Status:        GoalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Remaining returns the unclamped amount still needed to reach the target.
func (g *Goal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// IsComplete reports whether the goal has reached its target.
func (g *Goal) IsComplete() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
