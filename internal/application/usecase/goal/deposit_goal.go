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
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// DepositGoalInput represents the input for depositing money into a goal.
type DepositGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// DepositGoalOutput represents the output of a goal deposit.
type DepositGoalOutput struct {
	Goal            *entity.Goal
	Contribution    *entity.Transaction
	ProgressPercent int
}

// DepositGoalUseCase applies a money deposit to a savings goal. The deposit
// inserts a paired expense transaction ("savings contribution") and updates
// the goal row in a single all-or-nothing write; a failed balance check or
// storage error leaves both untouched.
type DepositGoalUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewDepositGoalUseCase creates a new DepositGoalUseCase instance.
func NewDepositGoalUseCase(
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
	now func() time.Time,
) *DepositGoalUseCase {
	return &DepositGoalUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
		now:             now,
	}
}

// Execute performs the deposit.
func (uc *DepositGoalUseCase) Execute(ctx context.Context, input DepositGoalInput) (*DepositGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDepositAmount,
			"deposit amount must be greater than zero",
			domainerror.ErrInvalidDepositAmount,
		)
	}

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

	// Paused and completed goals do not accept deposits.
	if goal.Status != entity.GoalStatusActive {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotActive,
			fmt.Sprintf("cannot deposit to a %s goal", goal.Status),
			domainerror.ErrGoalNotActive,
		)
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}
	if input.Amount.GreaterThan(totals.Net()) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInsufficientBalance,
			"deposit amount exceeds current balance",
			domainerror.ErrInsufficientBalance,
		)
	}

	now := uc.now().UTC()

	// Clamp to the target; an overshooting deposit completes the goal at
	// exactly targetAmount.
	goal.CurrentAmount = goal.CurrentAmount.Add(input.Amount)
	if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.CurrentAmount = goal.TargetAmount
		goal.Status = entity.GoalStatusCompleted
	}
	goal.UpdatedAt = now

	contribution := entity.NewTransaction(
		input.UserID,
		entity.TransactionTypeExpense,
		input.Amount,
		nil,
		valueobject.NormalizeDate(now),
		"Savings contribution: "+goal.Name,
		"",
	)

	if err := uc.goalRepo.ApplyDeposit(ctx, goal, contribution); err != nil {
		return nil, fmt.Errorf("failed to apply deposit: %w", err)
	}

	return &DepositGoalOutput{
		Goal:            goal,
		Contribution:    contribution,
		ProgressPercent: ProgressPercent(goal),
	}, nil
}
