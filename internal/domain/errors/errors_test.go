package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"natours/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusFail, StatusOf(http.StatusBadRequest))
	assert.Equal(t, StatusFail, StatusOf(http.StatusNotFound))
	assert.Equal(t, StatusError, StatusOf(http.StatusInternalServerError))
	assert.Equal(t, StatusError, StatusOf(http.StatusOK))
}

func TestNewOperationalError(t *testing.T) {
	err := NewOperationalError("Too many requests", http.StatusTooManyRequests)

	assert.Equal(t, http.StatusTooManyRequests, err.HTTPCode())
	assert.Equal(t, "TOO_MANY_REQUESTS", err.ErrorCode())
	assert.Equal(t, StatusFail, err.Status())
	assert.True(t, err.IsOperational())
}

func TestNewInternalError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewInternalError(cause)

	assert.False(t, err.IsOperational())
	assert.Equal(t, StatusError, err.Status())
	assert.ErrorIs(t, err, cause)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *BaseError
		code int
		msg  string
	}{
		{name: "not found", err: NewNotFoundError("42"), code: http.StatusNotFound, msg: "No document found with id 42"},
		{name: "cast", err: NewCastError("id", "abc"), code: http.StatusBadRequest, msg: "Invalid id: abc"},
		{name: "duplicate", err: NewDuplicateError("The Forest Hiker"), code: http.StatusBadRequest, msg: "Duplicate field value: The Forest Hiker. Please use another value!"},
		{name: "validation", err: NewValidationError("a is required", "b is too short"), code: http.StatusBadRequest, msg: "Invalid input data. a is required. b is too short"},
		{name: "route", err: NewRouteNotFoundError("/api/v1/nope"), code: http.StatusNotFound, msg: "Can't find /api/v1/nope on this server!"},
		{name: "query", err: NewInvalidQueryError("query operator", "regex"), code: http.StatusBadRequest, msg: "Invalid query operator: regex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
			assert.Equal(t, tt.msg, tt.err.Message())
			assert.True(t, tt.err.IsOperational())
		})
	}
}

func TestBaseError_IsSurvivesWrapping(t *testing.T) {
	wrapped := ErrForbidden.WithDetails("role guide").WrapMessage("restrict")

	assert.True(t, errors.Is(wrapped, ErrForbidden))
	assert.False(t, errors.Is(wrapped, ErrNotLoggedIn))

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "role guide", appErr.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("deadlock")
	err := NewDatabaseExecuteError(cause, "update tour")

	assert.False(t, err.IsOperational())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "deadlock")
	assert.ErrorIs(t, err, cause)
}
