package service

import (
	"context"
	"encoding/json"

	"ai-devicechat-be/internal/dto"
	"ai-devicechat-be/internal/entity"
	"ai-devicechat-be/internal/pkg/logger"
	"ai-devicechat-be/internal/repository/contract"
	"ai-devicechat-be/pkg/events"
	pktNats "ai-devicechat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IAuditConsumerService persists relay events and republishes them to
// NATS for external consumers.
type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

type auditConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	auditRepo contract.ChatAuditRepository
	natsPub   *pktNats.Publisher
	log       logger.ILogger
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditRepo contract.ChatAuditRepository,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		auditRepo: auditRepo,
		natsPub:   natsPub,
		log:       log,
	}
}

func (s *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RelayEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("AuditConsumer", "Failed to unmarshal relay event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	row, err := s.buildAuditRow(payload)
	if err != nil {
		s.log.Error("AuditConsumer", "Failed to build audit row", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := s.auditRepo.Create(ctx, row); err != nil {
		s.log.Error("AuditConsumer", "Failed to persist audit row", map[string]interface{}{"error": err.Error()})
		msg.Nack() // Nack for retriable errors
		return
	}

	// External fan-out is best effort; the row is already persisted.
	if s.natsPub != nil {
		event := events.BaseEvent{Type: payload.Type, Data: payload.Data, OccurredAt: payload.OccurredAt}
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.log.Warn("AuditConsumer", "Failed to republish event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}

func (s *auditConsumerService) buildAuditRow(payload dto.RelayEventMessage) (*entity.ChatAuditLog, error) {
	details, err := json.Marshal(payload.Data)
	if err != nil {
		return nil, err
	}

	row := &entity.ChatAuditLog{
		Id:        uuid.New(),
		Query:     stringField(payload.Data, "query"),
		Intent:    stringField(payload.Data, "intent"),
		Details:   datatypes.JSON(details),
		CreatedAt: payload.OccurredAt,
	}

	if id := stringField(payload.Data, "device_id"); id != "" {
		row.DeviceId = &id
	}
	if reason := stringField(payload.Data, "reason"); reason != "" {
		row.FailureReason = &reason
	}
	row.EmittedBytes = intField(payload.Data, "emitted_bytes")
	row.DurationMs = int64(intField(payload.Data, "duration_ms"))

	return row, nil
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func intField(data map[string]interface{}, key string) int {
	// JSON numbers decode as float64
	if v, ok := data[key].(float64); ok {
		return int(v)
	}
	return 0
}
