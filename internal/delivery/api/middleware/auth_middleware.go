// Package middleware holds the API specific echo middleware.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// CookieName carries the session token for browsers.
	CookieName = "jwt"
	// LoggedOutValue is written by logout and counts as no token.
	LoggedOutValue = "loggedout"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware authenticates requests and restricts routes by role.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Protect requires a valid session from the Authorization header or the jwt cookie.
func (m *AuthMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			token = cookieToken(c)
		}
		if token == "" {
			return domainerrors.ErrNotLoggedIn
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}
		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// IsLoggedIn resolves the cookie session for pages. Any failure leaves the request anonymous.
func (m *AuthMiddleware) IsLoggedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookieToken(c)
		if token == "" {
			return next(c)
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Ignoring page session", slog.Any("error", err))

			return next(c)
		}
		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// RestrictTo admits principals holding one of roles. It must run after Protect.
func (m *AuthMiddleware) RestrictTo(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetCurrentUser(c)
			if !ok || !entity.Roles(roles).Admits(user.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func cookieToken(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == LoggedOutValue {
		return ""
	}

	return cookie.Value
}
