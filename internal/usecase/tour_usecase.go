package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/paulmach/orb"
)

// TourUsecase adds the tour reports and geo lookups to tour CRUD.
type TourUsecase interface {
	ResourceUsecase[entity.Tour]

	// GetBySlug loads a tour page with guides and reviews.
	GetBySlug(ctx context.Context, slug string) (*entity.Tour, error)

	Stats(ctx context.Context) ([]*entity.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]*entity.MonthlyPlan, error)

	// Within lists tours starting inside distance of center, measured in unit.
	Within(ctx context.Context, center orb.Point, distance float64, unit entity.DistanceUnit) ([]*entity.Tour, error)

	// Distances lists how far every tour starts from center, nearest first.
	Distances(ctx context.Context, center orb.Point, unit entity.DistanceUnit) ([]*entity.TourDistance, error)
}
