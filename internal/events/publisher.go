// Package events publishes booking lifecycle events to an AMQP broker
// for downstream consumers. Publishing is best-effort: failures are
// logged and never interrupt the request that produced the event.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	QueueBookingCreated   = "booking.created"
	QueueBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	BookingID uint      `json:"booking_id"`
	FieldID   uint      `json:"field_id"`
	UserID    uint      `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// Publisher is nil-safe: a nil publisher (no AMQP_URL configured)
// silently drops every event.
type Publisher struct {
	url string
	log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, log: log}
}

func (p *Publisher) BookingCreated(ctx context.Context, ev BookingEvent) {
	p.publish(ctx, QueueBookingCreated, ev)
}

func (p *Publisher) BookingCancelled(ctx context.Context, ev BookingEvent) {
	p.publish(ctx, QueueBookingCancelled, ev)
}

func (p *Publisher) publish(ctx context.Context, queue string, ev BookingEvent) {
	if p == nil {
		return
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("amqp dial failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("amqp channel failed", zap.Error(err))
		return
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.log.Warn("amqp queue declare failed", zap.Error(err))
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("amqp marshal failed", zap.Error(err))
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		p.log.Warn("amqp publish failed", zap.Error(err), zap.String("queue", queue))
	}
}
