package queue

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/service"
	"natours/internal/errors"

	"go.uber.org/fx"
)

const (
	ProviderAMQP = "amqp"

	defaultExchange = "natours.events"
	defaultQueue    = "natours.mail"

	defaultMaxAttempts = 5
	defaultRetryDelay  = 30 * time.Second
)

// noopPublisher is a no-op implementation when the queue is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishUserSignedUp(ctx context.Context, event *service.UserSignedUpEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[NoopQueue] Event publishing disabled, skipping",
		slog.String("type", service.EventUserSignedUp),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) PublishBookingCreated(ctx context.Context, event *service.BookingCreatedEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[NoopQueue] Event publishing disabled, skipping",
		slog.String("type", service.EventBookingCreated),
		slog.String("booking_id", event.BookingID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// NewNoopPublisher drops every event.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Queue
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Queue not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	if !strings.EqualFold(cfg.Provider, ProviderAMQP) {
		return nil, errors.Errorf("unknown queue provider: %s", cfg.Provider)
	}
	if cfg.URL == "" {
		return nil, errors.New("url is required for amqp provider")
	}

	publisher, err := NewAMQPPublisher(cfg.URL, exchangeName(cfg), logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// NewConsumer creates the mail queue consumer. The queue must be configured.
func NewConsumer(cfg *config.Config, logger *slog.Logger) (Consumer, error) {
	q := cfg.Queue
	if q == nil || !strings.EqualFold(q.Provider, ProviderAMQP) || q.URL == "" {
		return nil, errors.New("the mail worker needs queue.provider=amqp and queue.url")
	}

	queueName := q.Queue
	if queueName == "" {
		queueName = defaultQueue
	}

	retry := RetryPolicy{MaxAttempts: q.MaxAttempts, Delay: q.RetryDelay}
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = defaultMaxAttempts
	}
	if retry.Delay <= 0 {
		retry.Delay = defaultRetryDelay
	}

	return NewAMQPConsumer(q.URL, exchangeName(q), queueName,
		[]string{service.EventUserSignedUp, service.EventBookingCreated}, retry, logger), nil
}

func exchangeName(cfg *config.QueueConfig) string {
	if cfg.Exchange == "" {
		return defaultExchange
	}

	return cfg.Exchange
}

// Module provides the event publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
