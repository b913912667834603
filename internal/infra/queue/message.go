// Package queue carries domain events over RabbitMQ.
package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"natours/internal/errors"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	headerRequestID = "request_id"
	headerAttempt   = "x-attempt"
)

// Message is one consumed event.
type Message struct {
	ID        string
	Type      string
	RequestID string
	// Attempt counts deliveries, starting at 1.
	Attempt   int
	Body      []byte
}

// Decode unmarshals the event payload into v.
func (m Message) Decode(v any) error {
	if err := json.Unmarshal(m.Body, v); err != nil {
		return errors.Wrapf(err, "decode %s event", m.Type)
	}

	return nil
}

// encode wraps an event as a persistent JSON publishing. The routing key is the event type.
func encode(eventType, requestID string, event any, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, errors.Wrapf(err, "encode %s event", eventType)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    now.UTC(),
		Type:         eventType,
		Body:         body,
	}
	if requestID != "" {
		pub.CorrelationId = requestID
		pub.Headers = amqp.Table{headerRequestID: requestID}
	}

	return pub, nil
}

func decode(d amqp.Delivery) Message {
	msg := Message{
		ID:        d.MessageId,
		Type:      d.Type,
		RequestID: d.CorrelationId,
		Attempt:   attemptOf(d.Headers),
		Body:      d.Body,
	}
	if msg.Type == "" {
		msg.Type = d.RoutingKey
	}
	if msg.RequestID == "" {
		if v, ok := d.Headers[headerRequestID]; ok {
			msg.RequestID = fmt.Sprint(v)
		}
	}

	return msg
}

func attemptOf(headers amqp.Table) int {
	var n int64
	switch v := headers[headerAttempt].(type) {
	case int32:
		n = int64(v)
	case int64:
		n = v
	case int:
		n = int64(v)
	}
	if n < 1 {
		return 1
	}

	return int(n)
}

// redeliver copies d into a fresh publishing stamped with attempt.
func redeliver(d amqp.Delivery, attempt int) amqp.Publishing {
	headers := amqp.Table{}
	for k, v := range d.Headers {
		headers[k] = v
	}
	headers[headerAttempt] = int64(attempt)

	typ := d.Type
	if typ == "" {
		typ = d.RoutingKey
	}

	return amqp.Publishing{
		Headers:       headers,
		ContentType:   d.ContentType,
		DeliveryMode:  amqp.Persistent,
		CorrelationId: d.CorrelationId,
		MessageId:     d.MessageId,
		Timestamp:     d.Timestamp,
		Type:          typ,
		Body:          d.Body,
	}
}

// retryableError marks a failure the broker should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Retryable wraps err so the consumer requeues the message.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}
