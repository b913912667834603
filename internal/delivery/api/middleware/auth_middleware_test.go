package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	mockUsecase "natours/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ann = &entity.User{ID: uuid.New(), Name: "Ann Smith", Role: entity.RoleUser}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{AuthUC: uc, Logger: newDiscardLogger()}), uc
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// principal is a terminal handler reporting the resolved user.
func principal(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return c.String(http.StatusOK, "anonymous")
	}

	return c.String(http.StatusOK, user.Name)
}

func TestProtect(t *testing.T) {
	t.Run("bearer token", func(t *testing.T) {
		m, uc := createTestAuthMiddleware(t)
		uc.EXPECT().Authenticate(mock.Anything, "header-token").Return(ann, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
		c, rec := newContext(req)

		require.NoError(t, m.Protect(principal)(c))
		assert.Equal(t, "Ann Smith", rec.Body.String())
	})

	t.Run("cookie fallback", func(t *testing.T) {
		m, uc := createTestAuthMiddleware(t)
		uc.EXPECT().Authenticate(mock.Anything, "cookie-token").Return(ann, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
		c, rec := newContext(req)

		require.NoError(t, m.Protect(principal)(c))
		assert.Equal(t, "Ann Smith", rec.Body.String())
	})

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{name: "no token", prepare: func(*http.Request) {}},
		{name: "logged out cookie", prepare: func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: CookieName, Value: LoggedOutValue})
		}},
		{name: "non bearer scheme", prepare: func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Basic YW5uOnBhc3M=")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := createTestAuthMiddleware(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			tt.prepare(req)
			c, _ := newContext(req)

			assert.ErrorIs(t, m.Protect(principal)(c), domainerrors.ErrNotLoggedIn)
		})
	}

	t.Run("stale session", func(t *testing.T) {
		m, uc := createTestAuthMiddleware(t)
		uc.EXPECT().Authenticate(mock.Anything, "old").Return(nil, domainerrors.ErrPasswordChangedAfterToken)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer old")
		c, _ := newContext(req)

		assert.ErrorIs(t, m.Protect(principal)(c), domainerrors.ErrPasswordChangedAfterToken)
	})
}

func TestIsLoggedIn(t *testing.T) {
	t.Run("valid cookie", func(t *testing.T) {
		m, uc := createTestAuthMiddleware(t)
		uc.EXPECT().Authenticate(mock.Anything, "cookie-token").Return(ann, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
		c, rec := newContext(req)

		require.NoError(t, m.IsLoggedIn(principal)(c))
		assert.Equal(t, "Ann Smith", rec.Body.String())
	})

	t.Run("invalid cookie stays anonymous", func(t *testing.T) {
		m, uc := createTestAuthMiddleware(t)
		uc.EXPECT().Authenticate(mock.Anything, "forged").Return(nil, domainerrors.ErrTokenInvalid)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
		c, rec := newContext(req)

		require.NoError(t, m.IsLoggedIn(principal)(c))
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("bearer header is ignored", func(t *testing.T) {
		m, _ := createTestAuthMiddleware(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
		c, rec := newContext(req)

		require.NoError(t, m.IsLoggedIn(principal)(c))
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}

func TestRestrictTo(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Name: "Admin", Role: entity.RoleAdmin}

	tests := []struct {
		name    string
		user    *entity.User
		roles   []entity.Role
		allowed bool
	}{
		{name: "role in set", user: admin, roles: []entity.Role{entity.RoleAdmin, entity.RoleLeadGuide}, allowed: true},
		{name: "role outside set", user: ann, roles: []entity.Role{entity.RoleAdmin}},
		{name: "empty set", user: admin, roles: nil},
		{name: "no principal", user: nil, roles: []entity.Role{entity.RoleUser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := createTestAuthMiddleware(t)
			c, _ := newContext(httptest.NewRequest(http.MethodDelete, "/api/v1/tours/1", nil))
			if tt.user != nil {
				deliverycontext.SetCurrentUser(c, tt.user)
			}

			err := m.RestrictTo(tt.roles...)(principal)(c)
			if tt.allowed {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}
}
