// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrQueueUnavailable is returned when the notification queue cannot be reached.
	ErrQueueUnavailable = errors.New("notification queue unavailable")

	// ErrEventEncoding is returned when a notification event cannot be encoded or decoded.
	ErrEventEncoding = errors.New("notification event encoding failed")

	// ErrPermanentEmailFailure is returned when a digest email fails with a permanent error.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned when a digest email fails with a temporary error.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeQueueUnavailable NotificationErrorCode = "NTF-010001"
	ErrCodeEventEncoding    NotificationErrorCode = "NTF-010002"

	// Delivery errors (02XXXX)
	ErrCodePermanentEmailFailure NotificationErrorCode = "NTF-020001"
	ErrCodeTemporaryEmailFailure NotificationErrorCode = "NTF-020002"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
