// Package budget contains budget-related use cases.
package budget

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// PeriodBounds returns the start and end dates of the period instance
// containing the given date. Weeks start on Monday; both bounds are
// normalized calendar dates and the range is inclusive.
func PeriodBounds(date time.Time, period entity.BudgetPeriod) (start, end time.Time) {
	day := valueobject.NormalizeDate(date)

	switch period {
	case entity.BudgetPeriodWeekly:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday is 7
		}
		start = day.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 6)
	case entity.BudgetPeriodMonthly:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case entity.BudgetPeriodYearly:
		start = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, -1)
	default:
		start = day
		end = day
	}
	return start, end
}

// isValidBudgetPeriod validates the budget period.
func isValidBudgetPeriod(period entity.BudgetPeriod) bool {
	return period == entity.BudgetPeriodWeekly ||
		period == entity.BudgetPeriodMonthly ||
		period == entity.BudgetPeriodYearly
}
