package handler

import (
	"net/http"
	"strconv"
	"strings"

	"natours/internal/delivery/api/response"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

// topToursQuery is applied by the top-5-cheap alias.
var topToursQuery = map[string]string{
	"limit":  "5",
	"sort":   "-ratingsAverage,price",
	"fields": "name,price,ratingsAverage,summary,difficulty",
}

// TourHandler serves tour CRUD plus the reports and geo lookups.
type TourHandler struct {
	*ResourceHandler[entity.Tour]

	uc usecase.TourUsecase
}

func NewTourHandler(uc usecase.TourUsecase) *TourHandler {
	return &TourHandler{
		ResourceHandler: NewResourceHandler[entity.Tour](uc, ResourceOptions[entity.Tour]{
			Populate: []string{repository.PopulateGuides, repository.PopulateReviews},
		}),
		uc: uc,
	}
}

// AliasTopTours rewrites the query into the five best rated, cheapest tours.
func (h *TourHandler) AliasTopTours(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := c.QueryParams()
		for key, value := range topToursQuery {
			params.Set(key, value)
		}
		c.Request().URL.RawQuery = params.Encode()

		return next(c)
	}
}

func (h *TourHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Data{"stats": stats})
}

// MonthlyPlan reports tour starts per month of :year.
func (h *TourHandler) MonthlyPlan(c echo.Context) error {
	raw := c.Param("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return domainerrors.NewCastError("year", raw)
	}

	plan, err := h.uc.MonthlyPlan(c.Request().Context(), year)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Data{"plan": plan})
}

// ToursWithin lists tours starting within :distance of :latlng.
func (h *TourHandler) ToursWithin(c echo.Context) error {
	raw := c.Param("distance")
	distance, err := strconv.ParseFloat(raw, 64)
	if err != nil || distance < 0 {
		return domainerrors.NewCastError("distance", raw)
	}

	center, err := parseLatLng(c.Param("latlng"))
	if err != nil {
		return err
	}

	tours, err := h.uc.Within(c.Request().Context(), center, distance, entity.ParseDistanceUnit(c.Param("unit")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, "data", tours, len(tours))
}

// Distances lists how far each tour starts from :latlng.
func (h *TourHandler) Distances(c echo.Context) error {
	center, err := parseLatLng(c.Param("latlng"))
	if err != nil {
		return err
	}

	distances, err := h.uc.Distances(c.Request().Context(), center, entity.ParseDistanceUnit(c.Param("unit")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Data{"data": distances})
}

// parseLatLng reads "lat,lng" into an orb point, which stores longitude first.
func parseLatLng(raw string) (orb.Point, error) {
	lat, lng, ok := strings.Cut(raw, ",")
	if !ok {
		return orb.Point{}, domainerrors.ErrInvalidLatLng
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return orb.Point{}, domainerrors.ErrInvalidLatLng
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return orb.Point{}, domainerrors.ErrInvalidLatLng
	}

	return orb.Point{longitude, latitude}, nil
}
