// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCategoryNameTaken is returned when the user already has a category with the same name and type.
	ErrCategoryNameTaken = errors.New("category name already in use")

	// ErrUnauthorizedCategoryAccess is returned when user is not authorized to access a category.
	ErrUnauthorizedCategoryAccess = errors.New("unauthorized access to category")

	// ErrCategoryInUse is returned when deleting a category that still has budgets attached.
	ErrCategoryInUse = errors.New("category has budgets attached")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired  CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010002"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010003"

	// Conflict errors (02XXXX)
	ErrCodeCategoryNameTaken CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryInUse     CategoryErrorCode = "CAT-020002"

	// Access errors (03XXXX)
	ErrCodeCategoryNotFound           CategoryErrorCode = "CAT-030001"
	ErrCodeUnauthorizedCategoryAccess CategoryErrorCode = "CAT-030002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
