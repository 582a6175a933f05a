// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyExists is returned when registering with an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidEmail is returned when the email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password too weak")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken is returned when the bearer token is invalid or expired.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrRateLimited is returned when too many login attempts are made.
	ErrRateLimited = errors.New("too many attempts")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail      AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword      AuthErrorCode = "AUTH-010002"
	ErrCodeMissingAuthFields AuthErrorCode = "AUTH-010003"

	// Credential errors (02XXXX)
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020002"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-030001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-030003"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
