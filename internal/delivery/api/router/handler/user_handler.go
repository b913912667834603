package handler

import (
	"net/http"

	"natours/internal/delivery/api/response"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the self service account routes and the admin user CRUD.
type UserHandler struct {
	*ResourceHandler[entity.User]

	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler[entity.User](uc, ResourceOptions[entity.User]{}),
		uc:              uc,
	}
}

// GetMe returns the signed in user.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	doc, err := h.uc.Get(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Doc(c, http.StatusOK, doc)
}

// UpdateMe changes the name or email of the signed in user.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateMeInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateMe(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Data{"user": updated})
}

// DeleteMe deactivates the signed in user.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMe(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// CreateUser points admins at the signup route.
func (h *UserHandler) CreateUser(echo.Context) error {
	return domainerrors.ErrUseSignup
}
