package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Database
	Redis          *redis.Client
	RabbitMQ       *amqp.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown releases every driver that was opened. Optional drivers may be nil.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.MongoDB != nil {
		if err := b.MongoDB.Client().Disconnect(ctx); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing MongoDB")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	b.Logger.Info("Successfully closing Logger")
	// Sync on stdout/stderr sinks returns EINVAL on some platforms.
	_ = b.Logger.Sync()

	return nil
}
