package errors

import (
	"fmt"
	"net/http"

	"portfolio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Error codes shared by the API and its clients.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateUser      = "DUPLICATE_USER"
	CodeDuplicateResource  = "DUPLICATE_RESOURCE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeUpstreamService    = "UPSTREAM_SERVICE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

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

// Is matches any BaseError carrying the same error code, so a copy with a
// rewritten message still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a resource-specific message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithMessagef is WithMessage with formatting.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidation,
		"Invalid request data",
		"",
	)

	// Authentication-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		CodeDuplicateUser,
		"User already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeInvalidCredentials,
		"Invalid email or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"Not authorized",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CodeUserNotFound,
		"User not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"Password processing failed",
		"",
	)

	// Resource errors
	ErrDuplicateResource = NewBaseError(
		http.StatusBadRequest,
		CodeDuplicateResource,
		"Resource already exists",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Resource not found",
		"",
	)

	// External services
	ErrUpstreamService = NewBaseError(
		http.StatusInternalServerError,
		CodeUpstreamService,
		"Failed to communicate with AI service.",
		"",
	)

	ErrAIConfiguration = NewBaseError(
		http.StatusInternalServerError,
		CodeUpstreamService,
		"AI service configuration error. API key is missing.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeInternal
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
