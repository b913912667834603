// Package handler turns queued domain events into mail deliveries.
package handler

import (
	"context"
	"log/slog"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/service"
	"natours/internal/errors"
	"natours/internal/infra/metrics"
	"natours/internal/infra/queue"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	kindWelcome             = "welcome"
	kindBookingConfirmation = "booking_confirmation"
)

// MailHandler consumes signup and booking events
type MailHandler struct {
	mailUC  usecase.MailUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// MailHandlerParams holds dependencies for the MailHandler
type MailHandlerParams struct {
	fx.In

	MailUC  usecase.MailUsecase
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewMailHandler creates a new mail event handler
func NewMailHandler(params MailHandlerParams) *MailHandler {
	return &MailHandler{
		mailUC:  params.MailUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Handle processes one queued event. Only transient send failures come back retryable.
func (h *MailHandler) Handle(ctx context.Context, msg queue.Message) error {
	requestID := msg.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", msg.ID),
		slog.String("type", msg.Type),
		slog.Int("attempt", msg.Attempt),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	var (
		kind string
		err  error
	)
	switch msg.Type {
	case service.EventUserSignedUp:
		kind = kindWelcome
		err = h.welcome(ctx, msg)
	case service.EventBookingCreated:
		kind = kindBookingConfirmation
		err = h.bookingConfirmation(ctx, msg)
	default:
		reqLogger.Warn("[Worker] Dropping event of unknown type")

		return nil
	}

	h.metrics.ObserveMail(kind, err)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", queue.IsRetryable(err)),
		)

		return err
	}

	return nil
}

func (h *MailHandler) welcome(ctx context.Context, msg queue.Message) error {
	var event service.UserSignedUpEvent
	if err := msg.Decode(&event); err != nil {
		return err
	}

	return classify(h.mailUC.SendWelcome(ctx, &event))
}

func (h *MailHandler) bookingConfirmation(ctx context.Context, msg queue.Message) error {
	var event service.BookingCreatedEvent
	if err := msg.Decode(&event); err != nil {
		return err
	}

	return classify(h.mailUC.SendBookingConfirmation(ctx, &event))
}

// classify marks everything except an undeliverable mail for redelivery.
func classify(err error) error {
	if err == nil || errors.Is(err, usecase.ErrUndeliverableMail) {
		return err
	}

	return queue.Retryable(err)
}
