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

type QuoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuoteMapper
}

func NewQuoteRepository(db *gorm.DB) contract.QuoteRepository {
	return &QuoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuoteMapper(),
	}
}

func (r *QuoteRepositoryImpl) Create(ctx context.Context, quote *entity.Quote) error {
	if quote.Id == uuid.Nil {
		quote.Id = uuid.New()
	}
	m := r.mapper.QuoteToModel(quote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*quote = *r.mapper.QuoteToEntity(m)
	return nil
}

func (r *QuoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quote, error) {
	var models []*model.Quote
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Quote, len(models))
	for i, m := range models {
		entities[i] = r.mapper.QuoteToEntity(m)
	}
	return entities, nil
}

func (r *QuoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Quote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
