package database

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/pkg/constvars"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func mongoConnectionString(cfg config.MongoDB) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.Username, cfg.Password, cfg.Host, cfg.Port)
}

func NewMongoDB(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*mongo.Database, error) {
	dbOptions := options.Client().ApplyURI(mongoConnectionString(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo database: %w", err)
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping mongo database: %w", err)
	}
	log.Info("Successfully connected to mongo database", zap.String("database", driverConfig.MongoDB.DbName))

	db := client.Database(driverConfig.MongoDB.DbName)
	if err := EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureIndexes creates the indexes the repositories rely on. Creating an
// existing index is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionPatients: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}},
		},
		constvars.MongoCollectionAppointments: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}}},
		},
		constvars.MongoCollectionMedicalRecords: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "patientId", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "attachments.storageName", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
