package queue

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"natours/config"
	"natours/internal/domain/service"
	"natours/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	event := &service.UserSignedUpEvent{RequestID: "req-1", UserID: "u1", Name: "Ann", Email: "ann@example.com"}

	pub, err := encode(service.EventUserSignedUp, event.RequestID, event, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "application/json", pub.ContentType)
	assert.Equal(t, amqp.Persistent, pub.DeliveryMode)
	assert.NotEmpty(t, pub.MessageId)

	msg := decode(amqp.Delivery{
		MessageId:     pub.MessageId,
		Type:          pub.Type,
		CorrelationId: pub.CorrelationId,
		Body:          pub.Body,
	})
	assert.Equal(t, service.EventUserSignedUp, msg.Type)
	assert.Equal(t, "req-1", msg.RequestID)

	var got service.UserSignedUpEvent
	require.NoError(t, msg.Decode(&got))
	assert.Equal(t, *event, got)
}

func TestDecode_FallsBackToRoutingKeyAndHeaders(t *testing.T) {
	msg := decode(amqp.Delivery{
		RoutingKey: service.EventBookingCreated,
		Headers:    amqp.Table{headerRequestID: "req-2"},
	})

	assert.Equal(t, service.EventBookingCreated, msg.Type)
	assert.Equal(t, "req-2", msg.RequestID)
}

func TestMessage_DecodeInvalidBody(t *testing.T) {
	var ev service.BookingCreatedEvent

	err := Message{Type: service.EventBookingCreated, Body: []byte("{")}.Decode(&ev)

	assert.Error(t, err)
	assert.False(t, IsRetryable(err))
}

func TestRetryable(t *testing.T) {
	base := errors.New("smtp down")

	assert.Nil(t, Retryable(nil))
	assert.True(t, IsRetryable(Retryable(base)))
	assert.True(t, IsRetryable(errors.Wrap(Retryable(base), "send welcome")))
	assert.ErrorIs(t, Retryable(base), base)
	assert.False(t, IsRetryable(base))
}

func TestSettle(t *testing.T) {
	smtpDown := Retryable(errors.New("smtp down"))

	tests := []struct {
		name    string
		err     error
		attempt int
		want    ackMode
	}{
		{name: "success", attempt: 1, want: ackDone},
		{name: "permanent failure is dropped", err: errors.New("bad payload"), attempt: 1, want: ackDone},
		{name: "retryable failure is retried", err: smtpDown, attempt: 1, want: ackRetry},
		{name: "retry below the cap", err: smtpDown, attempt: 2, want: ackRetry},
		{name: "last attempt is dead-lettered", err: smtpDown, attempt: 3, want: ackDeadLetter},
		{name: "success on the last attempt", attempt: 3, want: ackDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Message{Attempt: tt.attempt}
			got := settle(context.Background(), msg, func(context.Context, Message) error { return tt.err }, 3)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Attempt(t *testing.T) {
	tests := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{name: "first delivery", headers: nil, want: 1},
		{name: "int64 header", headers: amqp.Table{headerAttempt: int64(4)}, want: 4},
		{name: "int32 header", headers: amqp.Table{headerAttempt: int32(2)}, want: 2},
		{name: "garbage header", headers: amqp.Table{headerAttempt: "three"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(amqp.Delivery{Headers: tt.headers}).Attempt)
		})
	}
}

func TestRedeliver_CarriesTheMessageForward(t *testing.T) {
	d := amqp.Delivery{
		Headers:       amqp.Table{headerRequestID: "req-7", headerAttempt: int64(1)},
		ContentType:   "application/json",
		CorrelationId: "req-7",
		MessageId:     "m-1",
		RoutingKey:    service.EventUserSignedUp,
		Body:          []byte(`{"email":"ann@example.com"}`),
	}

	pub := redeliver(d, 2)

	assert.Equal(t, int64(2), pub.Headers[headerAttempt])
	assert.Equal(t, "req-7", pub.Headers[headerRequestID])
	assert.Equal(t, int64(1), d.Headers[headerAttempt])
	assert.Equal(t, service.EventUserSignedUp, pub.Type)
	assert.Equal(t, amqp.Persistent, pub.DeliveryMode)
	assert.Equal(t, "m-1", pub.MessageId)
	assert.Equal(t, d.Body, pub.Body)

	again := decode(amqp.Delivery{Headers: pub.Headers, Type: pub.Type, CorrelationId: pub.CorrelationId})
	assert.Equal(t, 2, again.Attempt)
	assert.Equal(t, "req-7", again.RequestID)
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: discardLogger(),
	})

	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishUserSignedUp(context.Background(), &service.UserSignedUpEvent{}))
	assert.NoError(t, publisher.PublishBookingCreated(context.Background(), &service.BookingCreatedEvent{}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name  string
		queue *config.QueueConfig
	}{
		{name: "unknown provider", queue: &config.QueueConfig{Provider: "kafka"}},
		{name: "missing url", queue: &config.QueueConfig{Provider: "amqp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Config: &config.Config{Queue: tt.queue},
				Logger: discardLogger(),
			})

			assert.Error(t, err)
		})
	}
}

func TestNewConsumer(t *testing.T) {
	_, err := NewConsumer(&config.Config{}, discardLogger())
	assert.Error(t, err)

	consumer, err := NewConsumer(&config.Config{Queue: &config.QueueConfig{Provider: "amqp", URL: "amqp://localhost"}}, discardLogger())
	require.NoError(t, err)

	c := consumer.(*amqpConsumer)
	assert.Equal(t, defaultExchange, c.exchange)
	assert.Equal(t, defaultQueue, c.queue)
	assert.ElementsMatch(t, []string{service.EventUserSignedUp, service.EventBookingCreated}, c.routingKeys)
	assert.Equal(t, RetryPolicy{MaxAttempts: defaultMaxAttempts, Delay: defaultRetryDelay}, c.retry)
	assert.Equal(t, "natours.mail.retry", c.retryQueue())
	assert.Equal(t, "natours.mail.dead", c.deadQueue())

	consumer, err = NewConsumer(&config.Config{Queue: &config.QueueConfig{
		Provider:    "amqp",
		URL:         "amqp://localhost",
		MaxAttempts: 2,
		RetryDelay:  time.Minute,
	}}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, RetryPolicy{MaxAttempts: 2, Delay: time.Minute}, consumer.(*amqpConsumer).retry)
}
