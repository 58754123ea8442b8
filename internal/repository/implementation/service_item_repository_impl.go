package implementation

import (
	"context"
	"errors"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/mapper"
	"rental-asistente-be/internal/model"
	"rental-asistente-be/internal/repository/contract"
	"rental-asistente-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ServiceItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewServiceItemRepository(db *gorm.DB) contract.ServiceItemRepository {
	return &ServiceItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *ServiceItemRepositoryImpl) Create(ctx context.Context, item *entity.ServiceItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	// Reload with the parent service so ServiceName is populated
	if err := r.db.WithContext(ctx).Preload("Service").First(m, m.Id).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *ServiceItemRepositoryImpl) Update(ctx context.Context, item *entity.ServiceItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Preload("Service").First(m, m.Id).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *ServiceItemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceItem{}, id).Error
}

func (r *ServiceItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceItem, error) {
	var m model.ServiceItem
	query := applySpecifications(r.db.WithContext(ctx).Preload("Service"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ItemToEntity(&m), nil
}

func (r *ServiceItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceItem, error) {
	var models []*model.ServiceItem
	query := applySpecifications(r.db.WithContext(ctx).Preload("Service"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}
