package entity

import "time"

// Service is a rentable service line ("Alquiler", "Montaje", ...).
type Service struct {
	Id          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsDeleted   bool
}

// ServiceItem is one sellable sub-item of a service. The discovery engine
// treats it as immutable catalog data.
type ServiceItem struct {
	Id          uint
	ServiceId   uint
	ServiceName string
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsDeleted   bool
}
