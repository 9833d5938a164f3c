package contracts

import (
	"clinic-service/internal/app/models"
	"context"
	"io"
)

type AttachmentStore interface {
	// Store validates size and sniffed content type before persisting under a fresh name.
	Store(ctx context.Context, originalName string, size int64, content io.Reader) (*models.Attachment, error)
	Retrieve(ctx context.Context, storageName string) (*models.StoredObject, error)
	Delete(ctx context.Context, storageName string) error
}
