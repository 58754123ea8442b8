package specification

import "gorm.io/gorm"

// ByServiceName filters services by name (case-insensitive, partial).
type ByServiceName struct {
	Name string
}

func (s ByServiceName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Name+"%")
}

// ItemsByServiceName filters service items through their parent service name
// (case-insensitive, partial). Used when the user confirms an intention by
// service name rather than by item id.
type ItemsByServiceName struct {
	Name string
}

func (s ItemsByServiceName) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Name + "%"
	return db.Joins("JOIN services ON services.id = service_items.service_id").
		Where("services.name ILIKE ?", pattern)
}

// ByServiceId filters items belonging to one service.
type ByServiceId struct {
	ServiceId uint
}

func (s ByServiceId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_id = ?", s.ServiceId)
}
