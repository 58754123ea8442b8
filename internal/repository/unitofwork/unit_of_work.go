package unitofwork

import (
	"context"

	"rental-asistente-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ServiceRepository() contract.ServiceRepository
	ServiceItemRepository() contract.ServiceItemRepository
	QuoteRepository() contract.QuoteRepository
	NotificationRepository() contract.NotificationRepository
}
