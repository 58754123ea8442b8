package contract

import (
	"context"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/repository/specification"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
