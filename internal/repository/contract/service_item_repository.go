package contract

import (
	"context"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/repository/specification"
)

type ServiceItemRepository interface {
	Create(ctx context.Context, item *entity.ServiceItem) error
	Update(ctx context.Context, item *entity.ServiceItem) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceItem, error)
}
