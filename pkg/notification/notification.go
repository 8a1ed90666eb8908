package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// Notification is a transient message shown until ExpiresAt.
type Notification struct {
	ID        uuid.UUID
	Message   string
	Type      Type
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}
