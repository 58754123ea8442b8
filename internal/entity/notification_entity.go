package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a stored event-driven message for a user, created by the
// NATS consumer when something relevant happens (e.g. a quote is finalized).
type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TypeCode  string
	Title     string
	Message   string
	Metadata  map[string]interface{}
	IsRead    bool
	CreatedAt time.Time
}
