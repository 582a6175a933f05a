// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// GoalProjection carries a goal together with its derived progress figures.
type GoalProjection struct {
	Goal            *entity.Goal
	ProgressPercent int
	DaysRemaining   int
	// RequiredDailySavings is nil when the projection is undefined (deadline
	// passed on an incomplete goal, or goal already complete).
	RequiredDailySavings *decimal.Decimal
}

// GetGoalInput represents the input for getting a goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Projection *GoalProjection
}

// GetGoalUseCase handles getting a goal by ID with its progress projection.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository, now func() time.Time) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
		now:      now,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return &GetGoalOutput{
		Projection: Project(goal, uc.now()),
	}, nil
}

// Project computes the derived progress figures for a goal as of 'today'.
func Project(goal *entity.Goal, today time.Time) *GoalProjection {
	projection := &GoalProjection{
		Goal:            goal,
		ProgressPercent: ProgressPercent(goal),
		DaysRemaining:   DaysRemaining(goal, today),
	}

	if rate, err := RequiredDailySavings(goal, today); err == nil && !goal.IsComplete() {
		projection.RequiredDailySavings = &rate
	}

	return projection
}
