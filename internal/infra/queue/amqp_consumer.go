package queue

import (
	"context"
	"log/slog"
	"time"

	"natours/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	prefetchCount = 10
	maxBackoff    = 30 * time.Second
)

// RetryPolicy bounds redelivery of messages whose handler failed with a Retryable error.
// A failed message waits Delay on the retry queue. After MaxAttempts deliveries it moves to the dead queue.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Handler processes one message. Returning a Retryable error schedules another attempt.
type Handler func(ctx context.Context, msg Message) error

// Consumer reads events until its context ends
type Consumer interface {
	Consume(ctx context.Context, handler Handler) error
}

type amqpConsumer struct {
	url         string
	exchange    string
	queue       string
	routingKeys []string
	retry       RetryPolicy
	logger      *slog.Logger
}

// NewAMQPConsumer binds a durable queue to routingKeys on the event exchange
func NewAMQPConsumer(url, exchange, queue string, routingKeys []string, retry RetryPolicy, logger *slog.Logger) Consumer {
	return &amqpConsumer{
		url:         url,
		exchange:    exchange,
		queue:       queue,
		routingKeys: routingKeys,
		retry:       retry,
		logger:      logger,
	}
}

func (c *amqpConsumer) retryQueue() string {
	return c.queue + ".retry"
}

func (c *amqpConsumer) deadQueue() string {
	return c.queue + ".dead"
}

// Consume reconnects with exponential backoff until ctx is done.
func (c *amqpConsumer) Consume(ctx context.Context, handler Handler) error {
	backoff := time.Second
	for {
		started := time.Now()
		err := c.consumeOnce(ctx, handler)
		if ctx.Err() != nil {
			return nil
		}

		if time.Since(started) > maxBackoff {
			backoff = time.Second
		}
		c.logger.Warn("[AMQP] Consumer disconnected, retrying",
			slog.Any("error", err),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (c *amqpConsumer) consumeOnce(ctx context.Context, handler Handler) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open rabbitmq channel")
	}
	defer ch.Close()

	if err := c.declare(ch); err != nil {
		return err
	}
	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		return errors.Wrap(err, "failed to set qos")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to consume %s", c.queue)
	}

	c.logger.Info("[AMQP] Consumer started", slog.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.dispatch(ctx, ch, d, handler)
		}
	}
}

func (c *amqpConsumer) declare(ch *amqp.Channel) error {
	if err := declareExchange(ch, c.exchange); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", c.queue)
	}

	for _, key := range c.routingKeys {
		if err := ch.QueueBind(c.queue, key, c.exchange, false, nil); err != nil {
			return errors.Wrapf(err, "failed to bind %s to %s", key, c.queue)
		}
	}

	// Expired retries dead-letter through the default exchange back onto the work queue.
	retryArgs := amqp.Table{
		"x-message-ttl":             c.retry.Delay.Milliseconds(),
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": c.queue,
	}
	if _, err := ch.QueueDeclare(c.retryQueue(), true, false, false, false, retryArgs); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", c.retryQueue())
	}
	if _, err := ch.QueueDeclare(c.deadQueue(), true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", c.deadQueue())
	}

	return nil
}

func (c *amqpConsumer) dispatch(ctx context.Context, ch *amqp.Channel, d amqp.Delivery, handler Handler) {
	msg := decode(d)
	logger := c.logger.With(slog.String("message_id", d.MessageId), slog.Int("attempt", msg.Attempt))

	var err error
	switch settle(ctx, msg, handler, c.retry.MaxAttempts) {
	case ackDone:
		err = d.Ack(false)
	case ackRetry:
		if err = c.forward(ctx, ch, d, c.retryQueue(), msg.Attempt+1); err == nil {
			logger.Info("[AMQP] Delivery scheduled for retry", slog.Duration("delay", c.retry.Delay))
		}
	case ackDeadLetter:
		if err = c.forward(ctx, ch, d, c.deadQueue(), msg.Attempt); err == nil {
			logger.Warn("[AMQP] Delivery attempts exhausted, parked", slog.String("queue", c.deadQueue()))
		}
	}
	if err != nil {
		logger.Warn("[AMQP] Failed to settle delivery", slog.Any("error", err))
	}
}

// forward republishes d onto queue and acks the original. If the copy cannot be
// published the original goes back to the work queue.
func (c *amqpConsumer) forward(ctx context.Context, ch *amqp.Channel, d amqp.Delivery, queue string, attempt int) error {
	if err := ch.PublishWithContext(ctx, "", queue, false, false, redeliver(d, attempt)); err != nil {
		return errors.Join(errors.Wrapf(err, "failed to publish to %s", queue), d.Nack(false, true))
	}

	return errors.WithStack(d.Ack(false))
}

type ackMode int

const (
	ackDone ackMode = iota
	ackRetry
	ackDeadLetter
)

// settle runs handler and decides how the broker should treat the message.
// Non retryable failures are dropped so a poison message cannot loop. Retryable
// ones are retried until maxAttempts deliveries were made.
func settle(ctx context.Context, msg Message, handler Handler, maxAttempts int) ackMode {
	err := handler(ctx, msg)
	switch {
	case err == nil || !IsRetryable(err):
		return ackDone
	case msg.Attempt >= maxAttempts:
		return ackDeadLetter
	default:
		return ackRetry
	}
}
