package events

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitMQPublisher struct {
	ch       publishChannel
	exchange string
	log      *zap.Logger
	mu       sync.Mutex
}

// NewRabbitMQPublisher declares a durable topic exchange and publishes
// domain events to it, routed by event name.
func NewRabbitMQPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	return newPublisher(ch, exchange, log), nil
}

func newPublisher(ch publishChannel, exchange string, log *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		ch:       ch,
		exchange: exchange,
		log:      log,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, routingKey),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrPublishEvent(err, p.exchange)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		CorrelationId: requestID,
		Type:          routingKey,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return exceptions.ErrPublishEvent(err, p.exchange)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher drops every event, used when RabbitMQ is disabled.
func NewNoopPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return nil
}
