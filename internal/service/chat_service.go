package service

import (
	"context"
	"fmt"
	"time"

	"ai-devicechat-be/internal/constant"
	"ai-devicechat-be/internal/dto"
	"ai-devicechat-be/internal/pkg/logger"
	"ai-devicechat-be/pkg/events"
	"ai-devicechat-be/pkg/extractor"
	"ai-devicechat-be/pkg/llm"
	"ai-devicechat-be/pkg/prompt"
	"ai-devicechat-be/pkg/resolver"
	"ai-devicechat-be/pkg/stream"
)

// IChatService relays one user message through context resolution, the
// completion backend and the reasoning filter.
type IChatService interface {
	// Relay drives the full pipeline and calls emit once per output
	// fragment, in backend order. A non-nil error from emit means the
	// client is gone; Relay stops promptly and returns that error.
	// Upstream failures are delivered through emit as error chunks, not
	// as a return value, because by then the response stream is open.
	Relay(ctx context.Context, message string, emit func(dto.StreamChunk) error) error
}

type chatService struct {
	resolver    *resolver.Resolver
	llmProvider llm.LLMProvider
	publisher   IAuditPublisherService
	log         logger.ILogger
	modelName   string
	backendURL  string
}

func NewChatService(
	ctxResolver *resolver.Resolver,
	llmProvider llm.LLMProvider,
	publisher IAuditPublisherService,
	log logger.ILogger,
	modelName string,
	backendURL string,
) IChatService {
	return &chatService{
		resolver:    ctxResolver,
		llmProvider: llmProvider,
		publisher:   publisher,
		log:         log,
		modelName:   modelName,
		backendURL:  backendURL,
	}
}

func (s *chatService) Relay(ctx context.Context, message string, emit func(dto.StreamChunk) error) error {
	start := time.Now()

	intent, entities := extractor.Extract(message)
	s.log.Debug("ChatService", "Query classified", map[string]interface{}{
		"intent":      string(intent),
		"device_id":   entities.DeviceId,
		"model_query": entities.DeviceModelQuery,
	})

	contextBlock := s.resolver.Resolve(ctx, intent, entities)
	fullPrompt := prompt.NewBuilder(message, contextBlock).Build()

	upstream, err := s.llmProvider.Stream(ctx, fullPrompt)
	if err != nil {
		s.log.Error("ChatService", "Completion backend unreachable", map[string]interface{}{
			"backend": s.backendURL,
			"model":   s.modelName,
			"error":   err.Error(),
		})
		s.publisher.PublishRelayEvent(ctx, events.NewChatRelayFailed(message, string(intent), err.Error(), time.Since(start)))
		return emit(dto.StreamChunk{
			Error: fmt.Sprintf("Sorry, could not connect to the AI model. Make sure the backend at %s is running and model '%s' is available. Detail: %v", s.backendURL, s.modelName, err),
		})
	}

	filter := stream.NewFilter(constant.ThinkEndTag)
	emittedBytes := 0

	for ev := range upstream {
		if ev.Err != nil {
			// The backend reported an error mid-stream; forward it and
			// keep reading, the stream may recover.
			s.log.Warn("ChatService", "Backend reported stream error", map[string]interface{}{"error": ev.Err.Error()})
			if err := emit(dto.StreamChunk{Error: fmt.Sprintf("AI backend error: %v", ev.Err)}); err != nil {
				return err
			}
			continue
		}

		out, ok := filter.Feed(ev.Text)
		if !ok {
			continue
		}
		emittedBytes += len(out)
		if err := emit(dto.StreamChunk{Text: out}); err != nil {
			return err
		}
	}

	if !filter.Passthrough() {
		// The model never closed its reasoning segment. The client gets
		// an empty successful stream; the audit trail records it.
		s.log.Warn("ChatService", "Stream ended inside reasoning segment, nothing emitted", map[string]interface{}{
			"model": s.modelName,
		})
	}

	s.publisher.PublishRelayEvent(ctx, events.NewChatRelayCompleted(
		message, string(intent), entities.DeviceId, emittedBytes, time.Since(start)))

	return nil
}
