package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-asistente-be/internal/constant"
	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/pkg/logger"
	"rental-asistente-be/internal/repository/specification"
	"rental-asistente-be/internal/repository/unitofwork"
	"rental-asistente-be/pkg/events"
	pktNats "rental-asistente-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationService persists event-driven messages for users. It runs as
// a background consumer on the NATS event stream.
type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, log logger.ILogger) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotificationService", "Processing event", map[string]interface{}{"type": typeCode})

	switch typeCode {
	case constant.QuoteFinalizedEventType:
		return s.handleQuoteFinalized(ctx, event)
	default:
		// Unknown events are acked, not retried.
		return nil
	}
}

func (s *NotificationService) handleQuoteFinalized(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	uidStr, _ := payload["user_id"].(string)
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Quote finalized event without a valid user_id", map[string]interface{}{"user_id": uidStr})
		return nil
	}

	total, _ := payload["total"].(float64)

	notif := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userID,
		TypeCode:  constant.NotificationQuoteFinalized,
		Title:     "Cotización registrada",
		Message:   fmt.Sprintf("Tu cotización por %.2f fue registrada correctamente.", total),
		Metadata:  payload,
		CreatedAt: time.Now(),
		IsRead:    false,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notif); err != nil {
		s.logger.Error("NotificationService", "Failed to save notification", map[string]interface{}{"error": err.Error(), "user_id": uidStr})
		return err // NATS will redeliver
	}

	return nil
}

// GetNotifications lists stored notifications for a user, newest first.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().FindAll(ctx,
		specification.NotificationsByUser{UserId: userID},
		specification.OrderBy{Clause: "created_at desc"},
	)
}
