package storage

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

type attachmentStore struct {
	Backend Backend
	MaxSize int64
	Log     *zap.Logger
}

func NewAttachmentStore(backend Backend, maxSize int64, logger *zap.Logger) contracts.AttachmentStore {
	return &attachmentStore{
		Backend: backend,
		MaxSize: maxSize,
		Log:     logger,
	}
}

func (s *attachmentStore) Store(ctx context.Context, originalName string, size int64, content io.Reader) (*models.Attachment, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("attachmentStore.Store called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("original_name", originalName),
		zap.Int64("size", size),
	)

	if size > s.MaxSize {
		return nil, exceptions.ErrPayloadTooLarge(nil, size, s.MaxSize)
	}

	// Declared sizes can lie, read one byte past the limit to catch it.
	data, err := io.ReadAll(io.LimitReader(content, s.MaxSize+1))
	if err != nil {
		return nil, exceptions.ErrStorageReadUpload(err)
	}
	if int64(len(data)) > s.MaxSize {
		return nil, exceptions.ErrPayloadTooLarge(nil, int64(len(data)), s.MaxSize)
	}

	detected := mimetype.Detect(data)
	contentType, extension, ok := allowedType(detected)
	if !ok {
		s.Log.Warn("attachmentStore.Store rejected content type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("content_type", detected.String()),
		)
		return nil, exceptions.ErrUnsupportedMediaType(nil, detected.String())
	}

	storageName := utils.GenerateStorageName(extension)
	if err := s.Backend.Put(ctx, storageName, data, contentType); err != nil {
		s.Log.Error("attachmentStore.Store error writing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStorageNameKey, storageName),
			zap.Error(err),
		)
		return nil, exceptions.ErrStoragePutObject(err, storageName)
	}

	s.Log.Info("attachmentStore.Store succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStorageNameKey, storageName),
	)
	return &models.Attachment{
		StorageName:  storageName,
		OriginalName: filepath.Base(originalName),
		ContentType:  contentType,
		Size:         int64(len(data)),
		UploadedAt:   time.Now().UTC(),
	}, nil
}

func (s *attachmentStore) Retrieve(ctx context.Context, storageName string) (*models.StoredObject, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("attachmentStore.Retrieve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStorageNameKey, storageName),
	)

	if !isValidStorageName(storageName) {
		return nil, exceptions.ErrStorageObjectNotFound(nil, storageName)
	}

	object, err := s.Backend.Get(ctx, storageName)
	if err != nil {
		if errors.Is(err, errObjectNotFound) {
			return nil, exceptions.ErrStorageObjectNotFound(err, storageName)
		}
		return nil, exceptions.ErrStorageGetObject(err, storageName)
	}
	return object, nil
}

func (s *attachmentStore) Delete(ctx context.Context, storageName string) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("attachmentStore.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStorageNameKey, storageName),
	)

	if !isValidStorageName(storageName) {
		return exceptions.ErrStorageObjectNotFound(nil, storageName)
	}

	if err := s.Backend.Remove(ctx, storageName); err != nil {
		if errors.Is(err, errObjectNotFound) {
			return exceptions.ErrStorageObjectNotFound(err, storageName)
		}
		return exceptions.ErrStorageGetObject(err, storageName)
	}
	return nil
}

func allowedType(detected *mimetype.MIME) (contentType, extension string, ok bool) {
	for allowed, ext := range constvars.AttachmentAllowedMIMETypes {
		if detected.Is(allowed) {
			return allowed, ext, true
		}
	}
	return "", "", false
}

// Storage names are generated flat names, anything else is a traversal attempt.
func isValidStorageName(name string) bool {
	return name != "" && name == filepath.Base(name) && !strings.HasPrefix(name, ".")
}
