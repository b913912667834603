package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"natours/internal/delivery/api/view"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ViewHandler renders the server side pages.
type ViewHandler struct {
	tourUC    usecase.TourUsecase
	bookingUC usecase.BookingUsecase
	userUC    usecase.UserUsecase
}

func NewViewHandler(tourUC usecase.TourUsecase, bookingUC usecase.BookingUsecase, userUC usecase.UserUsecase) *ViewHandler {
	return &ViewHandler{tourUC: tourUC, bookingUC: bookingUC, userUC: userUC}
}

func (h *ViewHandler) Overview(c echo.Context) error {
	tours, err := h.tourUC.List(c.Request().Context(), query.Build(url.Values{}))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, view.PageOverview, view.Data{
		"title": "All Tours",
		"tours": tours,
	})
}

// Tour renders the page of tour :slug with its guides and reviews.
func (h *ViewHandler) Tour(c echo.Context) error {
	tour, err := h.tourUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, view.PageTour, view.Data{
		"title": tour.Name + " Tour",
		"tour":  tour,
	})
}

func (h *ViewHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageLogin, view.Data{"title": "Log into your account"})
}

func (h *ViewHandler) Account(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageAccount, view.Data{"title": "Your account"})
}

// SubmitUserData saves the account form and renders the page with the stored user.
func (h *ViewHandler) SubmitUserData(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	name, email := c.FormValue("name"), c.FormValue("email")
	updated, err := h.userUC.UpdateMe(c.Request().Context(), user.ID, &usecase.UpdateMeInput{
		Name:  &name,
		Email: &email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, view.PageAccount, view.Data{
		"title": "Your account",
		"user":  updated,
	})
}

// MyTours lists the tours the signed in user booked.
func (h *ViewHandler) MyTours(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tours, err := h.bookingUC.MyTours(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, view.PageOverview, view.Data{
		"title": "My Tours",
		"tours": tours,
	})
}

// CreateBookingCheckout records the booking carried by a payment success redirect
// and redirects to the same page without the query. Requests without any booking
// parameter pass through.
func (h *ViewHandler) CreateBookingCheckout(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawTour, rawUser, rawPrice := c.QueryParam("tour"), c.QueryParam("user"), c.QueryParam("price")
		if rawTour == "" && rawUser == "" && rawPrice == "" {
			return next(c)
		}

		tourID, err := uuid.Parse(rawTour)
		if err != nil {
			return domainerrors.NewCastError("tour", rawTour)
		}
		userID, err := uuid.Parse(rawUser)
		if err != nil {
			return domainerrors.NewCastError("user", rawUser)
		}
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			return domainerrors.NewCastError("price", rawPrice)
		}

		if _, err := h.bookingUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
			TourID: tourID,
			UserID: userID,
			Price:  price,
		}); err != nil {
			return errors.WithStack(err)
		}

		return c.Redirect(http.StatusFound, c.Request().URL.Path)
	}
}
