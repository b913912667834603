package usecase

import (
	"context"
	"errors"

	"natours/internal/domain/service"
)

// ErrUndeliverableMail marks a mail that can never be composed, so retrying it is pointless.
var ErrUndeliverableMail = errors.New("undeliverable mail")

// MailUsecase turns queued events into transactional mail.
type MailUsecase interface {
	SendWelcome(ctx context.Context, event *service.UserSignedUpEvent) error
	SendBookingConfirmation(ctx context.Context, event *service.BookingCreatedEvent) error
}
