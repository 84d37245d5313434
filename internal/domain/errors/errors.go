package errors

import (
	"fmt"
	"net/http"

	"roster/internal/errors"
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
	// Credential failures share one code and message so callers cannot tell
	// an unknown email from a wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
		"",
	)

	ErrIDMismatch = NewBaseError(
		http.StatusBadRequest,
		"ID_MISMATCH",
		"id does not match",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email is already registered",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Token could not be issued",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NotFoundError reports a lookup-or-fail miss. It always names the resource
// kind and the identifier that was asked for.
type NotFoundError struct {
	Kind string
	ID   string
}

// NewNotFoundError creates a NotFoundError for the given kind and identifier.
func NewNotFoundError(kind string, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id.String()}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s by id %s was not found", e.Kind, e.ID)
}

// Is matches any other NotFoundError of the same kind, or any kind when the
// target kind is empty.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}

	return (t.Kind == "" || t.Kind == e.Kind) && (t.ID == "" || t.ID == e.ID)
}

func (e *NotFoundError) HTTPCode() int     { return http.StatusNotFound }
func (e *NotFoundError) ErrorCode() string { return "RESOURCE_NOT_FOUND" }
func (e *NotFoundError) Message() string   { return e.Error() }
func (e *NotFoundError) Details() string   { return "" }

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = &NotFoundError{}

// TokenFailure classifies why a presented bearer token was rejected.
type TokenFailure int

const (
	TokenMalformed TokenFailure = iota + 1
	TokenSignatureInvalid
	TokenExpired
)

func (f TokenFailure) String() string {
	switch f {
	case TokenMalformed:
		return "malformed"
	case TokenSignatureInvalid:
		return "signature_invalid"
	case TokenExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// TokenError is returned by token validation. Every failure kind is mapped to
// an unauthenticated response.
type TokenError struct {
	Failure TokenFailure
	cause   error
}

// NewTokenError wraps cause with the failure kind.
func NewTokenError(failure TokenFailure, cause error) *TokenError {
	return &TokenError{Failure: failure, cause: cause}
}

func (e *TokenError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("token %s: %v", e.Failure, e.cause)
	}

	return "token " + e.Failure.String()
}

func (e *TokenError) Unwrap() error { return e.cause }

// Is compares failure kinds, so errors.Is(err, ErrTokenExpired) works on any expired token error.
func (e *TokenError) Is(target error) bool {
	t, ok := target.(*TokenError)

	return ok && t.Failure == e.Failure
}

func (e *TokenError) HTTPCode() int { return http.StatusUnauthorized }

func (e *TokenError) ErrorCode() string {
	switch e.Failure {
	case TokenExpired:
		return "TOKEN_EXPIRED"
	case TokenSignatureInvalid:
		return "TOKEN_SIGNATURE_INVALID"
	default:
		return "TOKEN_MALFORMED"
	}
}

func (e *TokenError) Message() string { return "Invalid or expired token" }
func (e *TokenError) Details() string { return "" }

// Sentinels for errors.Is checks against token failures.
var (
	ErrTokenMalformed        = &TokenError{Failure: TokenMalformed}
	ErrTokenSignatureInvalid = &TokenError{Failure: TokenSignatureInvalid}
	ErrTokenExpired          = &TokenError{Failure: TokenExpired}
)

// ConfigurationError is fatal and only produced while the process starts.
// It is deliberately not an AppError: it must never reach a client.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func NewConfigurationError(setting, reason string) *ConfigurationError {
	return &ConfigurationError{Setting: setting, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Setting, e.Reason)
}

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

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
