package errors

import (
	"fmt"
	"net/http"
	"strings"

	"natours/internal/errors"
)

const (
	// StatusFail classifies client errors.
	StatusFail = "fail"
	// StatusError classifies server errors.
	StatusError = "error"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int       // HTTP status code
	ErrorCode() string   // Business error code
	Message() string     // User-friendly error message
	Details() string     // Detailed error information (optional)
	Status() string      // "fail" for 4xx, "error" otherwise
	IsOperational() bool // Safe to show the message to clients
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode    int
	errorCode   string
	message     string
	details     string
	operational bool
	cause       error
}

// NewBaseError creates a new operational error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:    httpCode,
		errorCode:   errorCode,
		message:     message,
		details:     details,
		operational: true,
	}
}

// NewOperationalError creates an expected error whose message reaches the client.
func NewOperationalError(message string, statusCode int) *BaseError {
	return NewBaseError(statusCode, codeFromStatus(statusCode), message, "")
}

// NewInternalError wraps an unexpected failure. Its message never reaches clients in production.
func NewInternalError(cause error) *BaseError {
	msg := "internal error"
	if cause != nil {
		msg = cause.Error()
	}

	return &BaseError{
		httpCode:  http.StatusInternalServerError,
		errorCode: "INTERNAL_ERROR",
		message:   msg,
		cause:     cause,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Unwrap exposes the wrapped cause, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
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

func (e *BaseError) Status() string {
	return StatusOf(e.httpCode)
}

func (e *BaseError) IsOperational() bool {
	return e.operational
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Is matches errors sharing the same business code so sentinel values survive WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// StatusOf classifies an HTTP status code.
func StatusOf(httpCode int) string {
	if httpCode >= 400 && httpCode < 500 {
		return StatusFail
	}

	return StatusError
}

func codeFromStatus(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		return fmt.Sprintf("HTTP_%d", statusCode)
	}

	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

// Predefined error types
var (
	// Authentication
	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"You are not logged in! Please log in to get access.",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Your token has expired! Please log in again.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token. Please log in again!",
		"",
	)

	ErrUserNoLongerExists = NewBaseError(
		http.StatusUnauthorized,
		"USER_NO_LONGER_EXISTS",
		"The user belonging to this token does no longer exist.",
		"",
	)

	ErrPasswordChangedAfterToken = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_CHANGED",
		"User recently changed password! Please log in again.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Please provide email and password!",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	// Password lifecycle
	ErrNoUserWithEmail = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"There is no user with that email address.",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Token is invalid or has expired",
		"",
	)

	ErrSendEmail = NewBaseError(
		http.StatusInternalServerError,
		"SEND_EMAIL_FAILED",
		"There was an error sending the email. Try again later!",
		"",
	)

	ErrWrongCurrentPassword = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_PASSWORD",
		"Your current password is wrong.",
		"",
	)

	ErrNotPasswordRoute = NewBaseError(
		http.StatusBadRequest,
		"NOT_PASSWORD_ROUTE",
		"This route is not for password updates. Please use /updateMyPassword.",
		"",
	)

	ErrUseSignup = NewBaseError(
		http.StatusInternalServerError,
		"ROUTE_NOT_DEFINED",
		"This route is not defined! Please use /signup instead",
		"",
	)

	// Tours
	ErrInvalidLatLng = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LATLNG",
		"Please provide latitude and longitude in the format lat,lng.",
		"",
	)

	ErrTourNameNotFound = NewBaseError(
		http.StatusNotFound,
		"TOUR_NOT_FOUND",
		"There is no tour with that name.",
		"",
	)

	// General errors
	ErrInternalError = NewInternalError(nil)
)

// NewNotFoundError reports a missing document.
func NewNotFoundError(id string) *BaseError {
	return NewBaseError(http.StatusNotFound, "NOT_FOUND", "No document found with id "+id, "")
}

// NewCastError reports a value that cannot be converted to the field's type.
func NewCastError(field, value string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "INVALID_VALUE", fmt.Sprintf("Invalid %s: %s", field, value), "")
}

// NewDuplicateError reports a unique constraint violation.
func NewDuplicateError(value string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_FIELD",
		fmt.Sprintf("Duplicate field value: %s. Please use another value!", value),
		"",
	)
}

// NewValidationError joins every failed rule into one message.
func NewValidationError(messages ...string) *BaseError {
	msg := "Invalid input data."
	if len(messages) > 0 {
		msg += " " + strings.Join(messages, ". ")
	}

	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", msg, "")
}

// NewInvalidQueryError reports a filter that the store cannot express.
func NewInvalidQueryError(kind, value string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "INVALID_QUERY", fmt.Sprintf("Invalid %s: %s", kind, value), "")
}

// NewRouteNotFoundError reports an unmatched URL.
func NewRouteNotFoundError(url string) *BaseError {
	return NewBaseError(http.StatusNotFound, "ROUTE_NOT_FOUND", fmt.Sprintf("Can't find %s on this server!", url), "")
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
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
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
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

func (e *DatabaseExecuteError) Status() string {
	return StatusError
}

func (e *DatabaseExecuteError) IsOperational() bool {
	return false
}
