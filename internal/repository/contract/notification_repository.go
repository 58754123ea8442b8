package contract

import (
	"context"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/repository/specification"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error)
}
