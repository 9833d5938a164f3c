package models

import "io"

// StoredObject is an attachment body opened for reading. Callers must close Content.
type StoredObject struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}
