package bootstrap

import (
	"log"
	"time"

	"ai-devicechat-be/internal/config"
	"ai-devicechat-be/internal/constant"
	"ai-devicechat-be/internal/controller"
	"ai-devicechat-be/internal/pkg/logger"
	"ai-devicechat-be/internal/repository/implementation"
	"ai-devicechat-be/internal/repository/memory"
	"ai-devicechat-be/internal/service"
	"ai-devicechat-be/pkg/llm/factory"
	pktNats "ai-devicechat-be/pkg/nats"
	"ai-devicechat-be/pkg/resolver"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	AuditConsumerService service.IAuditConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional: audit fan-out degrades without it)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Repositories
	deviceRepo := implementation.NewDeviceActivityRepository(db)
	cachedDevices := memory.NewCachedDeviceRepository(deviceRepo)
	auditRepo := implementation.NewChatAuditRepository(db)

	// 4. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.OllamaModel,
		cfg.Ai.OllamaBaseURL,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		sysLogger,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	sysLogger.Info("Bootstrap", "LLM provider initialized", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"base_url": cfg.Ai.OllamaBaseURL,
		"model":    cfg.Ai.OllamaModel,
	})

	// 5. Services
	ctxResolver := resolver.NewResolver(cachedDevices, sysLogger)
	auditPublisher := service.NewAuditPublisherService(constant.RelayCompletedTopic, pubSub, sysLogger)
	chatService := service.NewChatService(
		ctxResolver,
		llmProvider,
		auditPublisher,
		sysLogger,
		cfg.Ai.OllamaModel,
		cfg.Ai.OllamaBaseURL,
	)
	auditConsumer := service.NewAuditConsumerService(
		pubSub,
		constant.RelayCompletedTopic,
		auditRepo,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		ChatController:       controller.NewChatController(chatService, sysLogger),
		AuditConsumerService: auditConsumer,
		Logger:               sysLogger,
	}
}
