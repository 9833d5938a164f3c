package utils

import (
	"clinic-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateTokenID() string {
	return uuid.NewString()
}

// GenerateStorageName returns a collision-free object name keeping the extension.
func GenerateStorageName(extension string) string {
	return uuid.NewString() + extension
}
