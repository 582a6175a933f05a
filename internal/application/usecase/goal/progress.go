// Package goal contains goal-related use cases.
package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

var oneHundred = decimal.NewFromInt(100)

// ProgressPercent returns floor(currentAmount * 100 / targetAmount), clamped
// to [0, 100] for display. The clamp applies only here; savings-rate math
// uses the unclamped remaining amount.
func ProgressPercent(g *entity.Goal) int {
	if !g.TargetAmount.IsPositive() {
		return 0
	}

	percent := g.CurrentAmount.Mul(oneHundred).Div(g.TargetAmount).Floor().IntPart()
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return int(percent)
}

// DaysRemaining returns the number of whole calendar days from today to the
// goal deadline. Both dates are normalized to midnight first, so the result
// is insensitive to time of day: 0 means the deadline is today, negative
// means the goal is overdue.
func DaysRemaining(g *entity.Goal, today time.Time) int {
	return valueobject.DaysBetween(today, g.Deadline)
}

// RequiredDailySavings returns the amount that must be saved per day from
// today to reach the target by the deadline. A completed goal requires
// nothing. It fails with ErrDeadlinePassed when the deadline is today or in
// the past and the goal is still incomplete.
func RequiredDailySavings(g *entity.Goal, today time.Time) (decimal.Decimal, error) {
	if g.IsComplete() {
		return decimal.Zero, nil
	}

	days := DaysRemaining(g, today)
	if days <= 0 {
		return decimal.Zero, domainerror.NewGoalError(
			domainerror.ErrCodeDeadlinePassed,
			"goal deadline has passed",
			domainerror.ErrDeadlinePassed,
		)
	}

	remaining := g.Remaining()
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return remaining.Div(decimal.NewFromInt(int64(days))), nil
}
