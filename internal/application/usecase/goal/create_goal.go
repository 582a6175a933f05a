// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// DefaultGoalIcon is used when no icon is provided.
const DefaultGoalIcon = "piggy-bank"

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	Icon          string
	TargetAmount  decimal.Decimal
	InitialAmount decimal.Decimal
	Deadline      time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, now func() time.Time) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		now:      now,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			nil,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.InitialAmount.IsNegative() || input.InitialAmount.GreaterThan(input.TargetAmount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidInitialAmount,
			"initial amount must be between zero and the target amount",
			domainerror.ErrInvalidInitialAmount,
		)
	}

	deadline := valueobject.NormalizeDate(input.Deadline)
	if valueobject.DaysBetween(uc.now(), deadline) <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDeadline,
			"deadline must be in the future",
			domainerror.ErrInvalidDeadline,
		)
	}

	icon := input.Icon
	if icon == "" {
		icon = DefaultGoalIcon
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		icon,
		input.TargetAmount,
		input.InitialAmount,
		deadline,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
