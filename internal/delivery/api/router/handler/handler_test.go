package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"natours/internal/delivery/api/validator"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type route struct {
	path   string
	names  []string
	values []string
}

func newTestContext(t *testing.T, method, target, body string, r route) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if r.path != "" {
		c.SetPath(r.path)
		c.SetParamNames(r.names...)
		c.SetParamValues(r.values...)
	}

	return c, rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func requireAppError(t *testing.T, err error, code int, message string) {
	t.Helper()

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.HTTPCode())
	assert.Equal(t, message, appErr.Message())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "", route{})

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "success"}, decodeJSON(t, rec))
}

func TestCurrentUser_Missing(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/api/v1/users/me", "", route{})

	_, err := currentUser(c)

	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}
