// Package errors defines the application error taxonomy. Every operation
// boundary converts these into a client-facing status and message.
package errors

import (
	"net/http"

	"shopsync/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrDuplicateUser is returned when registration conflicts with an
	// existing username or email.
	ErrDuplicateUser = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USER",
		"User already exists",
		"",
	)

	// ErrInvalidCredentials deliberately uses one message for both "user not
	// found" and "password mismatch" to resist username enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// ErrUnauthenticated covers missing, malformed, expired, or otherwise
	// unverifiable tokens.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	// ErrMalformedPayload is returned when a token's signature verifies but
	// the payload carries no usable identity.
	ErrMalformedPayload = NewBaseError(
		http.StatusUnauthorized,
		"MALFORMED_PAYLOAD",
		"Invalid token payload",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrListNotFound = NewBaseError(
		http.StatusNotFound,
		"LIST_NOT_FOUND",
		"List not found",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	// ErrForbidden is returned when an authenticated user lacks access to a
	// list, or a grantee attempts an owner-only operation.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Not authorized for this list",
		"",
	)

	ErrAlreadyShared = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_SHARED",
		"User already has access",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// ErrStorageFailure is surfaced to clients as a generic server error;
	// the underlying cause is only recorded in the logs.
	ErrStorageFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILURE",
		"Server error",
		"",
	)
)

// NewStorageError wraps a low-level database error as a StorageFailure while
// keeping the cause in the error chain for operator diagnosis.
func NewStorageError(cause error, message string) error {
	return errors.Wrap(errors.Join(ErrStorageFailure, cause), message)
}
