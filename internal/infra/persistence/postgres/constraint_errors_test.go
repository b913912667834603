package postgres

import (
	stderrors "errors"
	"net/http"
	"testing"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "unique violation carries the value",
			err:         &pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (name)=(The Forest Hiker) already exists."},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Duplicate field value: The Forest Hiker. Please use another value!",
		},
		{
			name:        "gorm duplicated key",
			err:         errors.Wrap(gorm.ErrDuplicatedKey, "insert"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Duplicate field value: . Please use another value!",
		},
		{
			name:        "cast failure",
			err:         &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation, Message: `invalid input syntax for type uuid: "abc"`},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid uuid: abc",
		},
		{
			name:        "check violation",
			err:         &pgconn.PgError{Code: pgerrcode.CheckViolation, Message: "rating out of range"},
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid input data. rating out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "test")

			appErr, ok := errors.AsType[domainerrors.AppError](got)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())
			assert.Equal(t, tt.wantMessage, appErr.Message())
			assert.True(t, appErr.IsOperational())
		})
	}
}

func TestTranslateError_NotFoundAndUnknown(t *testing.T) {
	assert.NoError(t, translateError(nil, "noop"))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound, "find"), repository.ErrNotFound)

	cause := stderrors.New("connection refused")
	got := translateError(cause, "find tours")
	appErr, ok := errors.AsType[domainerrors.AppError](got)
	require.True(t, ok)
	assert.False(t, appErr.IsOperational())
	assert.ErrorIs(t, got, cause)
}
