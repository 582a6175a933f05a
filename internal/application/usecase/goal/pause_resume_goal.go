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
)

// SetGoalStatusInput represents the input for pausing or resuming a goal.
type SetGoalStatusInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// SetGoalStatusOutput represents the output of a status transition.
type SetGoalStatusOutput struct {
	Goal *entity.Goal
}

// PauseGoalUseCase transitions an active goal to paused.
type PauseGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewPauseGoalUseCase creates a new PauseGoalUseCase instance.
func NewPauseGoalUseCase(goalRepo adapter.GoalRepository, now func() time.Time) *PauseGoalUseCase {
	return &PauseGoalUseCase{goalRepo: goalRepo, now: now}
}

// Execute performs the pause transition. Only active goals can be paused;
// completed is terminal.
func (uc *PauseGoalUseCase) Execute(ctx context.Context, input SetGoalStatusInput) (*SetGoalStatusOutput, error) {
	goal, err := loadOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if goal.Status != entity.GoalStatusActive {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot pause a %s goal", goal.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	goal.Status = entity.GoalStatusPaused
	goal.UpdatedAt = uc.now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to pause goal: %w", err)
	}

	return &SetGoalStatusOutput{Goal: goal}, nil
}

// ResumeGoalUseCase transitions a paused goal back to active.
type ResumeGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewResumeGoalUseCase creates a new ResumeGoalUseCase instance.
func NewResumeGoalUseCase(goalRepo adapter.GoalRepository, now func() time.Time) *ResumeGoalUseCase {
	return &ResumeGoalUseCase{goalRepo: goalRepo, now: now}
}

// Execute performs the resume transition. Only paused goals can be resumed.
func (uc *ResumeGoalUseCase) Execute(ctx context.Context, input SetGoalStatusInput) (*SetGoalStatusOutput, error) {
	goal, err := loadOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if goal.Status != entity.GoalStatusPaused {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot resume a %s goal", goal.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	goal.Status = entity.GoalStatusActive
	goal.UpdatedAt = uc.now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to resume goal: %w", err)
	}

	return &SetGoalStatusOutput{Goal: goal}, nil
}

// loadOwnedGoal fetches a goal and verifies ownership.
func loadOwnedGoal(ctx context.Context, repo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
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

	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return goal, nil
}
