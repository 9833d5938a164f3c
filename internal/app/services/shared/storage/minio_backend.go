package storage

import (
	"bytes"
	"clinic-service/internal/app/models"
	"context"

	"github.com/minio/minio-go/v7"
)

type minioBackend struct {
	client     *minio.Client
	bucketName string
}

func NewMinioBackend(client *minio.Client, bucketName string) Backend {
	return &minioBackend{
		client:     client,
		bucketName: bucketName,
	}
}

func (m *minioBackend) Put(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (m *minioBackend) Get(ctx context.Context, name string) (*models.StoredObject, error) {
	object, err := m.client.GetObject(ctx, m.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateMinioError(err)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, translateMinioError(err)
	}

	return &models.StoredObject{
		Name:        name,
		ContentType: info.ContentType,
		Size:        info.Size,
		Content:     object,
	}, nil
}

func (m *minioBackend) Remove(ctx context.Context, name string) error {
	return m.client.RemoveObject(ctx, m.bucketName, name, minio.RemoveObjectOptions{})
}

func translateMinioError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return errObjectNotFound
	}
	return err
}
