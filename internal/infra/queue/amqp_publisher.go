package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/service"
	"natours/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher implements EventPublisher on a RabbitMQ topic exchange
type amqpPublisher struct {
	url      string
	exchange string
	logger   *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher dials the broker and declares the durable event exchange
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	p := &amqpPublisher{url: url, exchange: exchange, logger: logger}
	if err := p.connect(); err != nil {
		return nil, err
	}

	logger.Info("AMQP publisher initialized", slog.String("exchange", exchange))

	return p, nil
}

func (p *amqpPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if err := declareExchange(ch, p.exchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return err
	}

	p.conn, p.ch = conn, ch

	return nil
}

func (p *amqpPublisher) PublishUserSignedUp(ctx context.Context, event *service.UserSignedUpEvent) error {
	return p.publish(ctx, service.EventUserSignedUp, event.RequestID, event)
}

func (p *amqpPublisher) PublishBookingCreated(ctx context.Context, event *service.BookingCreatedEvent) error {
	return p.publish(ctx, service.EventBookingCreated, event.RequestID, event)
}

func (p *amqpPublisher) publish(ctx context.Context, eventType, requestID string, event any) error {
	pub, err := encode(eventType, requestID, event, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// The channel dies with the connection; reopen once before giving up.
	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, eventType, false, false, pub); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).DebugContext(ctx, "[AMQP] Event published",
		slog.String("type", eventType),
		slog.String("message_id", pub.MessageId),
	)

	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}

	return errors.WithStack(p.conn.Close())
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	return nil
}
