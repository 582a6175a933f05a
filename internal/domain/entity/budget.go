// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period type for a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a per-category spending allocation for a time period.
// A category has at most one budget per concrete period instance.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Amount     decimal.Decimal // Allocated amount, always >= 0
	Period     BudgetPeriod
	StartDate  time.Time // Calendar date, normalized to midnight UTC
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, name string, amount decimal.Decimal, period BudgetPeriod, startDate, endDate time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Name:       name,
		Amount:     amount,
		Period:     period,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetSeverity classifies how much of a budget's allocation remains.
type BudgetSeverity string

const (
	BudgetSeverityOK        BudgetSeverity = "ok"
	BudgetSeverityNearLimit BudgetSeverity = "near_limit"
	BudgetSeverityOver      BudgetSeverity = "over"
)

// BudgetStatus represents a budget together with its derived spending state.
type BudgetStatus struct {
	Budget    *Budget
	Category  *Category
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Severity  BudgetSeverity
}
