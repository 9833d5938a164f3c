package utils

import (
	"clinic-service/internal/pkg/constvars"
	"time"
)

// Today returns the current date in YYYY-MM-DD for the given location.
func Today(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(constvars.DateLayout)
}

func RemainingTTL(expiresAt time.Time) time.Duration {
	ttl := time.Until(expiresAt)
	if ttl < 0 {
		return 0
	}
	return ttl
}
