package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `json:"id"`
	Review    string    `json:"review" validate:"required"`
	Rating    float64   `json:"rating" validate:"required,gte=1,lte=5"`
	Tour      Ref[Tour] `json:"tour" validate:"required"`
	User      Ref[User] `json:"user" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int       `json:"__v"`
}

// RatingSummary is the aggregate written back onto a tour.
type RatingSummary struct {
	Quantity int
	Average  float64
}
