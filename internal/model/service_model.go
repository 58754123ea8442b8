package model

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	Id          uint           `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"type:varchar(120);not null;uniqueIndex"`
	Description string         `gorm:"type:text"`
	Items       []ServiceItem  `gorm:"foreignKey:ServiceId;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Service) TableName() string {
	return "services"
}
