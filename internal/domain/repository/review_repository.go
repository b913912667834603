package repository

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// PopulateUser loads the author of a review or the buyer of a booking.
const PopulateUser = "user"

// PopulateTour loads the tour of a review or booking.
const PopulateTour = "tour"

// ReviewRepository defines review persistence.
type ReviewRepository interface {
	CRUDRepository[entity.Review]

	// RatingSummary counts and averages the ratings of a tour.
	RatingSummary(ctx context.Context, tourID uuid.UUID) (entity.RatingSummary, error)
}
