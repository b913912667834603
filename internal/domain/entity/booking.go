package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking records a user's purchase of a tour.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	Tour      Ref[Tour] `json:"tour" validate:"required"`
	User      Ref[User] `json:"user" validate:"required"`
	Price     float64   `json:"price" validate:"required,gt=0"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"__v"`
}

func (b *Booking) SetDefaults() {
	b.Paid = true
}

// Ticket is the payload encoded into a booking's QR code.
type Ticket struct {
	BookingID uuid.UUID `json:"bookingId"`
	TourID    uuid.UUID `json:"tourId"`
	UserID    uuid.UUID `json:"userId"`
	Paid      bool      `json:"paid"`
	IssuedAt  time.Time `json:"issuedAt"`
}
