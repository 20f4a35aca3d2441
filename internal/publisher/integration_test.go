//go:build integration

package publisher

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

	"schoolsync/internal/domain"
	"schoolsync/testdata/utils"
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

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
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

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishRun() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-run",
		RoutingKey: "test-routing-key-run",
		QueueName:  "test-queue-run",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().UTC().Truncate(time.Millisecond)
	run := &domain.SyncRun{
		ID:          42,
		SyncType:    domain.SyncTypeSessions,
		StartedAt:   now.Add(-time.Minute),
		CompletedAt: utils.Ptr(now),
		Processed:   120,
		Created:     80,
		Updated:     30,
		Skipped:     10,
		Success:     true,
	}

	err = pub.PublishRun(s.ctx, run)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal("application/json", msg.ContentType)

	var received RunMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.SyncTypeSessions, received.SyncType)
	s.Equal(int64(42), received.Run.ID)
	s.Equal(80, received.Run.Created)
	s.Equal(30, received.Run.Updated)
	s.True(received.Run.Success)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishFailedRun() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-failed",
		RoutingKey: "test-routing-key-failed",
		QueueName:  "test-queue-failed",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	run := &domain.SyncRun{
		ID:           43,
		SyncType:     domain.SyncTypeSchools,
		StartedAt:    time.Now().UTC(),
		Success:      false,
		ErrorMessage: utils.Ptr("fetch records: status 503"),
	}

	err = pub.PublishRun(s.ctx, run)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received RunMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.False(received.Run.Success)
	s.Require().NotNil(received.Run.ErrorMessage)
	s.Contains(*received.Run.ErrorMessage, "status 503")
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	run := &domain.SyncRun{
		ID:        44,
		SyncType:  domain.SyncTypeYouth,
		StartedAt: time.Now().UTC(),
		Success:   true,
	}

	err = pub.PublishRun(s.ctx, run)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
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
		s.Fail("Timeout waiting for message")
		return nil
	}
}
