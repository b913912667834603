package repository

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingRepository defines booking persistence.
type BookingRepository interface {
	CRUDRepository[entity.Booking]

	// FindByUser lists the bookings of one user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
}
