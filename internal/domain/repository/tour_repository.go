package repository

import (
	"context"
	"time"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Relations a tour lookup can populate.
const (
	PopulateGuides  = "guides"
	PopulateReviews = "reviews"
)

// TourRepository defines tour persistence. Secret tours are hidden from every lookup.
type TourRepository interface {
	CRUDRepository[entity.Tour]

	// FindBySlug retrieves a tour with its guides and reviews populated.
	FindBySlug(ctx context.Context, slug string) (*entity.Tour, error)

	// FindByIDs retrieves the listed tours, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tour, error)

	// Stats aggregates tours rated at least minRating per difficulty, cheapest average first.
	Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error)

	// FindStartingBetween lists tours with at least one start date in [from, to).
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Tour, error)

	// FindStartingWithin lists tours whose start location lies inside bound.
	FindStartingWithin(ctx context.Context, bound orb.Bound) ([]*entity.Tour, error)

	// FindWithStartLocation lists every tour that has a start location.
	FindWithStartLocation(ctx context.Context) ([]*entity.Tour, error)

	// UpdateRatings stores the review aggregate of a tour.
	UpdateRatings(ctx context.Context, tourID uuid.UUID, summary entity.RatingSummary) error
}
