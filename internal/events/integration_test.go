//go:build integration

package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestConnection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublish_MessageFormat() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-format",
		RoutingKey: "test-routing-key-format",
		QueueName:  "test-queue-format",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	ev := ChangeEvent{
		Table:     "pins",
		Action:    "update",
		TenantID:  "tenant-1",
		RowID:     "pin-1",
		ProjectID: "project-1",
		PinID:     "pin-1",
	}

	err = pub.Publish(s.ctx, ev)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received ChangeEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("pins", received.Table)
	s.Equal("update", received.Action)
	s.Equal("tenant-1", received.TenantID)
	s.Equal("pin-1", received.RowID)
	s.Equal("project-1", received.ProjectID)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestConsume_RoundTripAndMalformed() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-consume",
		RoutingKey: "test-routing-key-consume",
		QueueName:  "test-queue-consume",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	// A malformed message ahead of the real one must be acked and
	// skipped without stopping the consumer.
	s.publishRaw(cfg, []byte("not json"))

	err = pub.Publish(s.ctx, ChangeEvent{
		Table:    "articles",
		Action:   "create",
		TenantID: "tenant-1",
		RowID:    "article-1",
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	received := make(chan ChangeEvent, 2)
	done := make(chan error, 1)
	go func() {
		done <- pub.Consume(ctx, cfg.QueueName, func(ev ChangeEvent) {
			received <- ev
		})
	}()

	select {
	case ev := <-received:
		s.Equal("articles", ev.Table)
		s.Equal("article-1", ev.RowID)
	case <-time.After(5 * time.Second):
		s.Fail("timeout waiting for event")
	}

	cancel()
	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		s.Fail("consumer did not stop")
	}
	s.Empty(received)
}

func (s *RabbitMQIntegrationSuite) publishRaw(cfg Config, body []byte) {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	err = ch.PublishWithContext(s.ctx, cfg.Exchange, cfg.RoutingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	s.Require().NoError(err)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("timeout waiting for message")
		return nil
	}
}
