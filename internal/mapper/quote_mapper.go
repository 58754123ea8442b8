package mapper

import (
	"encoding/json"

	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/model"

	"gorm.io/datatypes"
)

type QuoteMapper struct{}

func NewQuoteMapper() *QuoteMapper {
	return &QuoteMapper{}
}

func (m *QuoteMapper) QuoteToEntity(q *model.Quote) *entity.Quote {
	if q == nil {
		return nil
	}
	return &entity.Quote{
		Id:            q.Id,
		UserId:        q.UserId,
		ServiceItemId: q.ServiceItemId,
		ItemName:      q.ItemName,
		Amount:        q.Amount,
		Days:          q.Days,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *QuoteMapper) QuoteToModel(q *entity.Quote) *model.Quote {
	if q == nil {
		return nil
	}
	return &model.Quote{
		Id:            q.Id,
		UserId:        q.UserId,
		ServiceItemId: q.ServiceItemId,
		ItemName:      q.ItemName,
		Amount:        q.Amount,
		Days:          q.Days,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *QuoteMapper) NotificationToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	var meta map[string]interface{}
	if len(n.Metadata) > 0 {
		// best effort: malformed metadata is surfaced as nil, not an error
		_ = json.Unmarshal(n.Metadata, &meta)
	}
	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		TypeCode:  n.TypeCode,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  meta,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *QuoteMapper) NotificationToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	var meta datatypes.JSON
	if n.Metadata != nil {
		if raw, err := json.Marshal(n.Metadata); err == nil {
			meta = raw
		}
	}
	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		TypeCode:  n.TypeCode,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  meta,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
