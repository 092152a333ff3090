package errors

import (
	"net/http"

	"tube/internal/errors"
)

// Kind classifies an AppError independently of transport.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindInvalidOperation
	KindInvalidToken
)

// HTTPStatus maps the kind to its response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalidOperation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindInvalidToken:
		return "invalid_token"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPStatus()
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
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User directory
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		KindValidation,
		"USERNAME_ALREADY_EXISTS",
		"user already exists",
		"",
	)

	ErrEmailTaken = NewBaseError(
		KindValidation,
		"EMAIL_ALREADY_EXISTS",
		"email already exists",
		"",
	)

	// Authentication
	ErrEmailNotFound = NewBaseError(
		KindValidation,
		"EMAIL_NOT_FOUND",
		"email not found",
		"",
	)

	ErrPasswordIncorrect = NewBaseError(
		KindValidation,
		"PASSWORD_INCORRECT",
		"password incorrect",
		"",
	)

	ErrInvalidToken = NewBaseError(
		KindInvalidToken,
		"INVALID_TOKEN",
		"invalid or expired token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	// Subscription graph
	ErrSelfSubscription = NewBaseError(
		KindInvalidOperation,
		"SELF_SUBSCRIPTION",
		"user cannot subscribe to themselves",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"validation failed",
		"",
	)
)

// DatabaseExecuteError is a store failure not caused by the request. It
// renders as a 500 and keeps the cause for the logs.
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

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf reports the kind of the first AppError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
