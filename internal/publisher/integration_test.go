//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"aiva/internal/domain"
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

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:        s.amqpURL,
		Exchange:   "aiva-" + name,
		RoutingKey: "notifications-" + name,
		QueueName:  "queue-" + name,
		Source:     "test",
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("connection"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	s.NoError(pub.Close())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishSuccess() {
	cfg := s.config("success")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	n := domain.Notification{
		Level:      domain.NotificationSuccess,
		Action:     domain.ActionCreate,
		Collection: domain.CollectionCampaigns,
		EntityID:   "campaign-1704067200000",
		Message:    "create campaigns succeeded",
		Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
	}
	s.Require().NoError(pub.Publish(s.ctx, n))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal("success", msg.Type)

	var received NotificationMessage
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(msg.MessageId, received.ID)
	_, err = uuid.Parse(received.ID)
	s.NoError(err)
	s.Equal("test", received.Source)
	s.Equal(n, received.Notification)
	s.False(received.PublishedAt.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_NotifyFailure() {
	cfg := s.config("failure")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	pub.Notify(s.ctx, domain.Notification{
		Level:      domain.NotificationFailure,
		Action:     domain.ActionUpdate,
		Collection: domain.CollectionICPs,
		EntityID:   "icp-1",
		Message:    "update icps icp-1: not found",
	})

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received NotificationMessage
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal(domain.NotificationFailure, received.Notification.Level)
	s.Equal(domain.ActionUpdate, received.Notification.Action)
	s.Equal("icp-1", received.Notification.EntityID)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := s.config("persist")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.Require().NoError(pub.Publish(s.ctx, domain.Notification{
		Level:  domain.NotificationSuccess,
		Action: domain.ActionRefresh,
	}))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_UniqueMessageIDs() {
	cfg := s.config("ids")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	for range 2 {
		s.Require().NoError(pub.Publish(s.ctx, domain.Notification{Level: domain.NotificationSuccess}))
	}

	first := s.consumeMessage(cfg)
	second := s.consumeMessage(cfg)
	s.Require().NotNil(first)
	s.Require().NotNil(second)
	s.NotEqual(first.MessageId, second.MessageId)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		msg, ok, err := ch.Get(cfg.QueueName, true)
		s.Require().NoError(err)
		if ok {
			return &msg
		}
		time.Sleep(50 * time.Millisecond)
	}
	s.Fail("Timeout waiting for message")
	return nil
}
