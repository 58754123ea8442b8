package implementation

import (
	"context"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/mapper"
	"rental-asistente-be/internal/model"
	"rental-asistente-be/internal/repository/contract"
	"rental-asistente-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuoteMapper
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuoteMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.Id == uuid.Nil {
		notification.Id = uuid.New()
	}
	m := r.mapper.NotificationToModel(notification)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*notification = *r.mapper.NotificationToEntity(m)
	return nil
}

func (r *NotificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	var models []*model.Notification
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Notification, len(models))
	for i, m := range models {
		entities[i] = r.mapper.NotificationToEntity(m)
	}
	return entities, nil
}
