package handler

import (
	"net/http"
	"testing"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	mockUsecase "natours/internal/mocks/usecase"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetMe(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	uc.EXPECT().Get(mock.Anything, reviewer.ID).Return(reviewer, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/users/me", "", route{})
	deliverycontext.SetCurrentUser(c, reviewer)

	require.NoError(t, h.GetMe(c))

	doc := decodeJSON(t, rec)["data"].(map[string]any)["doc"].(map[string]any)
	assert.Equal(t, reviewer.ID.String(), doc["id"])
}

func TestUserHandler_UpdateMe(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	name := "Ann Jones"
	updated := &entity.User{ID: reviewer.ID, Name: name, Email: "ann@example.com"}

	uc.EXPECT().UpdateMe(mock.Anything, reviewer.ID, &usecase.UpdateMeInput{Name: &name}).Return(updated, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/api/v1/users/updateMe", `{"name":"Ann Jones","role":"admin"}`, route{})
	deliverycontext.SetCurrentUser(c, reviewer)

	require.NoError(t, h.UpdateMe(c))

	user := decodeJSON(t, rec)["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, name, user["name"])
}

func TestUserHandler_DeleteMe(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	uc.EXPECT().DeleteMe(mock.Anything, reviewer.ID).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/users/deleteMe", "", route{})
	deliverycontext.SetCurrentUser(c, reviewer)

	require.NoError(t, h.DeleteMe(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUserHandler_AccountRoutesNeedAPrincipal(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockUserUsecase(t))

	tests := []struct {
		name    string
		handler echo.HandlerFunc
	}{
		{name: "get me", handler: h.GetMe},
		{name: "update me", handler: h.UpdateMe},
		{name: "delete me", handler: h.DeleteMe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodGet, "/api/v1/users/me", "", route{})

			assert.ErrorIs(t, tt.handler(c), domainerrors.ErrNotLoggedIn)
		})
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockUserUsecase(t))

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/users", `{}`, route{})

	requireAppError(t, h.CreateUser(c), http.StatusInternalServerError, "This route is not defined! Please use /signup instead")
}
