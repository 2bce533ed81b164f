package service

import (
	"context"
	"encoding/json"

	"ai-devicechat-be/internal/dto"
	"ai-devicechat-be/internal/pkg/logger"
	"ai-devicechat-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IAuditPublisherService puts relay events on the internal bus. The
// relay path never blocks or fails on audit problems.
type IAuditPublisherService interface {
	PublishRelayEvent(ctx context.Context, event events.Event)
}

type auditPublisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	log       logger.ILogger
}

func NewAuditPublisherService(topicName string, pubSub *gochannel.GoChannel, log logger.ILogger) IAuditPublisherService {
	return &auditPublisherService{
		topicName: topicName,
		pubSub:    pubSub,
		log:       log,
	}
}

func (s *auditPublisherService) PublishRelayEvent(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(dto.RelayEventMessage{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		s.log.Warn("AuditPublisher", "Failed to marshal relay event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.log.Warn("AuditPublisher", "Failed to publish relay event", map[string]interface{}{"error": err.Error()})
	}
}
