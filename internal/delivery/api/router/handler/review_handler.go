package handler

import (
	"natours/internal/domain/entity"
	"natours/internal/domain/query"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const paramTourID = "tourId"

// ReviewHandler serves review CRUD, also nested below a tour.
type ReviewHandler struct {
	*ResourceHandler[entity.Review]
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		ResourceHandler: NewResourceHandler[entity.Review](uc, ResourceOptions[entity.Review]{
			Scope:        scopeByTour,
			BeforeCreate: setReviewRefs,
		}),
	}
}

// scopeByTour restricts nested listings to the tour in the path.
func scopeByTour(c echo.Context) ([]query.Predicate, error) {
	raw := c.Param(paramTourID)
	if raw == "" {
		return nil, nil
	}

	id, err := parseID(c, paramTourID)
	if err != nil {
		return nil, err
	}

	return []query.Predicate{{Field: "tour", Op: query.OpEq, Value: id.String()}}, nil
}

// setReviewRefs defaults the tour to the path and the author to the signed in user.
func setReviewRefs(c echo.Context, review *entity.Review) error {
	if review.Tour.ID == uuid.Nil && c.Param(paramTourID) != "" {
		id, err := parseID(c, paramTourID)
		if err != nil {
			return err
		}
		review.Tour = entity.RefTo[entity.Tour](id)
	}

	if review.User.ID == uuid.Nil {
		if user, err := currentUser(c); err == nil {
			review.User = entity.RefTo[entity.User](user.ID)
		}
	}

	return nil
}
