package contract

import (
	"context"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/repository/specification"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)
}
