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

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewServiceRepository(db *gorm.DB) contract.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ServiceToModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ServiceToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ServiceToModel(service)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ServiceToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Service{}, id).Error
}

func (r *ServiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	var m model.Service
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ServiceToEntity(&m), nil
}

func (r *ServiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	var models []*model.Service
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Service, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ServiceToEntity(m)
	}
	return entities, nil
}
