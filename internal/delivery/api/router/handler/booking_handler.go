package handler

import (
	"net/http"

	"natours/internal/domain/entity"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
)

const mimeImagePNG = "image/png"

// BookingHandler serves booking CRUD and the ticket QR code.
type BookingHandler struct {
	*ResourceHandler[entity.Booking]

	uc usecase.BookingUsecase
}

func NewBookingHandler(uc usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{
		ResourceHandler: NewResourceHandler[entity.Booking](uc, ResourceOptions[entity.Booking]{}),
		uc:              uc,
	}
}

// Ticket streams the QR code of booking :id as a PNG.
func (h *BookingHandler) Ticket(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, paramID)
	if err != nil {
		return err
	}

	png, err := h.uc.Ticket(c.Request().Context(), id, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, mimeImagePNG, png)
}
