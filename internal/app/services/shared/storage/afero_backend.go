package storage

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type aferoBackend struct {
	fs afero.Fs
}

// NewAferoBackend stores attachments as flat files on fs.
func NewAferoBackend(fs afero.Fs) Backend {
	return &aferoBackend{fs: fs}
}

func (a *aferoBackend) Put(ctx context.Context, name string, data []byte, contentType string) error {
	return afero.WriteFile(a.fs, name, data, 0o640)
}

func (a *aferoBackend) Get(ctx context.Context, name string) (*models.StoredObject, error) {
	file, err := a.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errObjectNotFound
		}
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &models.StoredObject{
		Name:        name,
		ContentType: contentTypeForExtension(filepath.Ext(name)),
		Size:        info.Size(),
		Content:     file,
	}, nil
}

func (a *aferoBackend) Remove(ctx context.Context, name string) error {
	err := a.fs.Remove(name)
	if err != nil && os.IsNotExist(err) {
		return errObjectNotFound
	}
	return err
}

func contentTypeForExtension(extension string) string {
	for contentType, ext := range constvars.AttachmentAllowedMIMETypes {
		if ext == extension {
			return contentType
		}
	}
	return constvars.MIMEOctetStream
}
