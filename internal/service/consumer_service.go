package service

import (
	"context"
	"encoding/json"

	"rental-asistente-be/internal/dto"
	"rental-asistente-be/internal/pkg/logger"
	"rental-asistente-be/pkg/discovery/index"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService keeps the discovery index in sync with catalog writes.
// Any catalog change message simply marks the cached snapshot stale; the
// next classification rebuilds it from the database.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	indexCache *index.Cache
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	indexCache *index.Cache,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		indexCache: indexCache,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.CatalogChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn("ConsumerService", "Failed to unmarshal catalog change message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid messages are not retriable
		return
	}

	cs.indexCache.Invalidate()
	cs.logger.Info("ConsumerService", "Discovery index invalidated", map[string]interface{}{
		"entity": payload.Entity,
		"id":     payload.Id,
		"op":     payload.Op,
	})
	msg.Ack()
}
