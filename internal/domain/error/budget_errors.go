// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidAllocation is returned when the allocated amount is negative.
	ErrInvalidAllocation = errors.New("invalid allocated amount")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetRange is returned when the start date is not before the end date.
	ErrInvalidBudgetRange = errors.New("invalid budget date range")

	// ErrBudgetOverlap is returned when a category already has a budget for an overlapping period.
	ErrBudgetOverlap = errors.New("budget already exists for this category and period")

	// ErrBudgetCategoryNotFound is returned when the category for a budget is not found.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrBudgetCategoryNotOwned is returned when the category does not belong to the user.
	ErrBudgetCategoryNotOwned = errors.New("category does not belong to user")

	// ErrUnauthorizedBudgetAccess is returned when user is not authorized to access a budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAllocation   BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetRange  BudgetErrorCode = "BUD-010003"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BUD-010004"

	// Conflict errors (02XXXX)
	ErrCodeBudgetOverlap BudgetErrorCode = "BUD-020001"

	// Access errors (03XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BUD-030001"
	ErrCodeBudgetCategoryNotFound   BudgetErrorCode = "BUD-030002"
	ErrCodeBudgetCategoryNotOwned   BudgetErrorCode = "BUD-030003"
	ErrCodeUnauthorizedBudgetAccess BudgetErrorCode = "BUD-030004"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
