// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left
// unchanged.
type UpdateGoalInput struct {
	GoalID   uuid.UUID
	UserID   uuid.UUID
	Name     *string
	Icon     *string
	Deadline *time.Time
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, now func() time.Time) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		now:      now,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal name is required",
				nil,
			)
		}
		goal.Name = *input.Name
	}

	if input.Icon != nil {
		goal.Icon = *input.Icon
	}

	if input.Deadline != nil {
		deadline := valueobject.NormalizeDate(*input.Deadline)
		if valueobject.DaysBetween(uc.now(), deadline) <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidDeadline,
				"deadline must be in the future",
				domainerror.ErrInvalidDeadline,
			)
		}
		goal.Deadline = deadline
	}

	goal.UpdatedAt = uc.now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
