package service

import (
	"context"
	"time"
)

// Event type names carried on the queue.
const (
	EventUserSignedUp   = "user.signed_up"
	EventBookingCreated = "booking.created"
)

// UserSignedUpEvent triggers the welcome mail.
type UserSignedUpEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingCreatedEvent triggers the booking confirmation mail.
type BookingCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"`
	BookingID string    `json:"booking_id"`
	TourID    string    `json:"tour_id"`
	TourName  string    `json:"tour_name"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishUserSignedUp(ctx context.Context, event *UserSignedUpEvent) error

	PublishBookingCreated(ctx context.Context, event *BookingCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
