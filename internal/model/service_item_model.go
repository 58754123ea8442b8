package model

import (
	"time"

	"gorm.io/gorm"
)

type ServiceItem struct {
	Id          uint           `gorm:"primaryKey;autoIncrement"`
	ServiceId   uint           `gorm:"not null;index"`
	Service     *Service       `gorm:"foreignKey:ServiceId"`
	Name        string         `gorm:"type:varchar(160);not null"`
	Description string         `gorm:"type:text"`
	Price       float64        `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ServiceItem) TableName() string {
	return "service_items"
}
