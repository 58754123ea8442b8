package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotesByUser filters quote lines owned by one user.
type QuotesByUser struct {
	UserId uuid.UUID
}

func (s QuotesByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// NotificationsByUser filters notifications owned by one user.
type NotificationsByUser struct {
	UserId uuid.UUID
}

func (s NotificationsByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}
