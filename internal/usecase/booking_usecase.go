package usecase

import (
	"context"

	"natours/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput is what the payment success redirect carries back.
type CheckoutInput struct {
	TourID uuid.UUID
	UserID uuid.UUID
	Price  float64
}

// BookingUsecase defines booking operations beyond CRUD.
type BookingUsecase interface {
	ResourceUsecase[entity.Booking]

	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Booking, error)

	// MyTours lists the tours the user has booked.
	MyTours(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error)

	// Ticket renders the booking QR code. Only the buyer and admins may fetch it.
	Ticket(ctx context.Context, bookingID uuid.UUID, requester *entity.User) ([]byte, error)
}
