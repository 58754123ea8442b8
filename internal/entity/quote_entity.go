package entity

import (
	"time"

	"github.com/google/uuid"
)

// Quote is one persisted quote line: a single selected item priced for a
// user at finalization time. Finalizing writes one Quote per selected item.
type Quote struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	ServiceItemId uint
	ItemName      string
	Amount        float64
	Days          int
	CreatedAt     time.Time
}
