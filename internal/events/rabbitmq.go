// Package events publishes row-change notifications to RabbitMQ so
// subscribers (the realtime cache invalidator, external consumers) can
// react to mutations without polling.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ChangeEvent describes one row change. Subscribers get no ordering
// guarantee beyond "eventually re-fetch".
type ChangeEvent struct {
	Table     string    `json:"table"`
	Action    string    `json:"action"` // "create", "update" or "delete"
	TenantID  string    `json:"tenant_id"`
	RowID     string    `json:"row_id"`
	ProjectID string    `json:"project_id,omitempty"`
	PinID     string    `json:"pin_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// Publish emits one change event. Events are persistent so a restarted
// consumer still sees mutations it missed.
func (r *RabbitMQ) Publish(ctx context.Context, ev ChangeEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	r.logger.Debug("published change event",
		"table", ev.Table,
		"action", ev.Action,
		"row_id", ev.RowID,
	)

	return nil
}

// Consume delivers change events to handler until ctx is cancelled.
// Malformed messages are acked and dropped.
func (r *RabbitMQ) Consume(ctx context.Context, queue string, handler func(ChangeEvent)) error {
	deliveries, err := r.channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			var ev ChangeEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				r.logger.Warn("dropping malformed change event", "error", err)
				_ = d.Ack(false)
				continue
			}
			handler(ev)
			_ = d.Ack(false)
		}
	}
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
