// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalProjection
}

// ListGoalsUseCase handles listing all goals for a user.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, now func() time.Time) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		now:      now,
	}
}

// Execute performs the goal listing with per-goal progress projections.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	today := uc.now()
	projections := make([]*GoalProjection, len(goals))
	for i, g := range goals {
		projections[i] = Project(g, today)
	}

	return &ListGoalsOutput{
		Goals: projections,
	}, nil
}
