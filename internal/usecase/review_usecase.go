package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase keeps the rating aggregate of a tour in step with its reviews.
type ReviewUsecase interface {
	ResourceUsecase[entity.Review]

	// RecalculateRatings stores the review count and rounded average on the tour.
	RecalculateRatings(ctx context.Context, tourID uuid.UUID) error
}
