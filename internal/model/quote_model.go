package model

import (
	"time"

	"github.com/google/uuid"
)

type Quote struct {
	Id            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID    `gorm:"type:uuid;not null;index:idx_quotes_user_created,priority:1"`
	ServiceItemId uint         `gorm:"not null;index"`
	ServiceItem   *ServiceItem `gorm:"foreignKey:ServiceItemId"`
	ItemName      string       `gorm:"type:varchar(160);not null"`
	Amount        float64      `gorm:"type:numeric(12,2);not null"`
	Days          int          `gorm:"not null;default:0"`
	CreatedAt     time.Time    `gorm:"autoCreateTime;index:idx_quotes_user_created,priority:2"`
}

func (Quote) TableName() string {
	return "quotes"
}
