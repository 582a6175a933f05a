// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is invalid (zero or negative).
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidInitialAmount is returned when the initial amount is negative or exceeds the target.
	ErrInvalidInitialAmount = errors.New("invalid initial amount")

	// ErrInvalidDeadline is returned when the goal deadline is not in the future.
	ErrInvalidDeadline = errors.New("deadline must be in the future")

	// ErrInvalidDepositAmount is returned when a deposit amount is zero or negative.
	ErrInvalidDepositAmount = errors.New("deposit amount must be greater than zero")

	// ErrGoalNotActive is returned when a deposit is attempted on a paused or completed goal.
	ErrGoalNotActive = errors.New("goal is not active")

	// ErrInsufficientBalance is returned when a deposit exceeds the user's current balance.
	ErrInsufficientBalance = errors.New("insufficient balance for deposit")

	// ErrDeadlinePassed is returned when a savings-rate projection is requested past the deadline.
	ErrDeadlinePassed = errors.New("goal deadline has passed")

	// ErrInvalidStatusTransition is returned on a disallowed pause/resume transition.
	ErrInvalidStatusTransition = errors.New("invalid goal status transition")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount  GoalErrorCode = "GOL-010001"
	ErrCodeInvalidInitialAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidDeadline      GoalErrorCode = "GOL-010003"
	ErrCodeInvalidDepositAmount GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010005"

	// State errors (02XXXX)
	ErrCodeGoalNotActive           GoalErrorCode = "GOL-020001"
	ErrCodeInsufficientBalance     GoalErrorCode = "GOL-020002"
	ErrCodeDeadlinePassed          GoalErrorCode = "GOL-020003"
	ErrCodeInvalidStatusTransition GoalErrorCode = "GOL-020004"

	// Access errors (03XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-030001"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-030002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
