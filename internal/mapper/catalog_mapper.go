package mapper

import (
	"time"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/model"

	"gorm.io/gorm"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

// Service Mappers

func (m *CatalogMapper) ServiceToEntity(s *model.Service) *entity.Service {
	if s == nil {
		return nil
	}
	return &entity.Service{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAtPtr(s.UpdatedAt),
		IsDeleted:   s.DeletedAt.Valid,
	}
}

func (m *CatalogMapper) ServiceToModel(s *entity.Service) *model.Service {
	if s == nil {
		return nil
	}
	out := &model.Service{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
	if s.UpdatedAt != nil {
		out.UpdatedAt = *s.UpdatedAt
	}
	if s.IsDeleted {
		out.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	return out
}

// ServiceItem Mappers

func (m *CatalogMapper) ItemToEntity(i *model.ServiceItem) *entity.ServiceItem {
	if i == nil {
		return nil
	}
	serviceName := ""
	if i.Service != nil {
		serviceName = i.Service.Name
	}
	return &entity.ServiceItem{
		Id:          i.Id,
		ServiceId:   i.ServiceId,
		ServiceName: serviceName,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAtPtr(i.UpdatedAt),
		IsDeleted:   i.DeletedAt.Valid,
	}
}

func (m *CatalogMapper) ItemToModel(i *entity.ServiceItem) *model.ServiceItem {
	if i == nil {
		return nil
	}
	out := &model.ServiceItem{
		Id:          i.Id,
		ServiceId:   i.ServiceId,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		CreatedAt:   i.CreatedAt,
	}
	if i.UpdatedAt != nil {
		out.UpdatedAt = *i.UpdatedAt
	}
	return out
}

func (m *CatalogMapper) ItemsToEntities(models []*model.ServiceItem) []*entity.ServiceItem {
	entities := make([]*entity.ServiceItem, len(models))
	for idx, it := range models {
		entities[idx] = m.ItemToEntity(it)
	}
	return entities
}

func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	out := t
	return &out
}
