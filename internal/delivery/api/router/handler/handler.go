package handler

import (
	"net/http"

	"natours/internal/delivery/api/response"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Status(c, http.StatusOK)
}

// currentUser returns the principal stored by the protect middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return nil, domainerrors.ErrNotLoggedIn
	}

	return user, nil
}
