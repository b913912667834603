package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"natours/config"
	"natours/internal/delivery/api/response"
	deliverycontext "natours/internal/delivery/context"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	apiPrefix = "/api"

	// ErrorTemplate is the page rendered for failed page requests.
	ErrorTemplate = "error"

	genericAPIMessage  = "Something went very wrong!"
	genericPageMessage = "Please try again later."
	errorPageTitle     = "Something went wrong!"
)

var invalidTokenErrors = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenInvalidClaims,
}

// ErrorMiddleware is the central error handler of the HTTP pipeline.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// Normalize folds any error into an AppError. Errors without a known
// translation become non-operational 500s.
func Normalize(err error) domainerrors.AppError {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr
	}

	if errors.Is(err, jwt.ErrTokenExpired) {
		return domainerrors.ErrTokenExpired
	}
	for _, target := range invalidTokenErrors {
		if errors.Is(err, target) {
			return domainerrors.ErrTokenInvalid
		}
	}

	if fieldErrs, ok := errors.AsType[validator.ValidationErrors](err); ok {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}

		return domainerrors.NewValidationError(msgs...)
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return domainerrors.NewOperationalError(httpErrorMessage(httpErr), httpErr.Code)
	}

	return domainerrors.NewInternalError(err)
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if errors.Is(err, echo.ErrNotFound) {
		err = domainerrors.NewRouteNotFoundError(c.Request().URL.RequestURI())
	}

	appErr := Normalize(err)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	if !appErr.IsOperational() {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	var renderErr error
	switch {
	case c.Request().Method == http.MethodHead:
		renderErr = c.NoContent(appErr.HTTPCode())
	case strings.HasPrefix(c.Request().URL.Path, apiPrefix):
		renderErr = m.renderJSON(c, err, appErr)
	default:
		renderErr = m.renderPage(c, appErr)
	}
	if renderErr != nil {
		logger.Error("Failed to render error response", slog.Any("error", renderErr))
	}
}

func (m *ErrorMiddleware) renderJSON(c echo.Context, err error, appErr domainerrors.AppError) error {
	if !m.production {
		return c.JSON(appErr.HTTPCode(), response.Envelope{
			Status:  appErr.Status(),
			Message: appErr.Message(),
			Error:   err.Error(),
			Stack:   fmt.Sprintf("%+v", err),
		})
	}

	if !appErr.IsOperational() {
		return c.JSON(http.StatusInternalServerError, response.Envelope{
			Status:  domainerrors.StatusError,
			Message: genericAPIMessage,
		})
	}

	return response.Error(c, appErr)
}

func (m *ErrorMiddleware) renderPage(c echo.Context, appErr domainerrors.AppError) error {
	msg := appErr.Message()
	if m.production && !appErr.IsOperational() {
		msg = genericPageMessage
	}

	data := map[string]any{
		"title": errorPageTitle,
		"msg":   msg,
	}
	if user, ok := deliverycontext.GetCurrentUser(c); ok {
		data["user"] = user
	}

	if c.Echo().Renderer == nil {
		return c.String(appErr.HTTPCode(), msg)
	}

	return c.Render(appErr.HTTPCode(), ErrorTemplate, data)
}

// RouteNotFound answers unmatched URLs.
func RouteNotFound(c echo.Context) error {
	return domainerrors.NewRouteNotFoundError(c.Request().URL.RequestURI())
}
