package models

import (
	"clinic-service/internal/pkg/constvars"
	"time"
)

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == constvars.RoleAdmin
}
