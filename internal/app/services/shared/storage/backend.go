package storage

import (
	"clinic-service/internal/app/models"
	"context"
	"errors"
)

var errObjectNotFound = errors.New("object not found")

// Backend persists raw attachment bytes under an opaque object name.
type Backend interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	// Get returns errObjectNotFound when name does not exist.
	Get(ctx context.Context, name string) (*models.StoredObject, error)
	Remove(ctx context.Context, name string) error
}
