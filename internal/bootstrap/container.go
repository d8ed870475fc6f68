package bootstrap

import (
	"context"
	"log"

	"policy-assist-be/internal/config"
	"policy-assist-be/internal/controller"
	"policy-assist-be/internal/pkg/logger"
	"policy-assist-be/internal/pkg/mailer"
	"policy-assist-be/internal/repository/implementation"
	"policy-assist-be/internal/service"
	"policy-assist-be/pkg/chat"
	"policy-assist-be/pkg/completion"
	"policy-assist-be/pkg/embedding"
	"policy-assist-be/pkg/grounding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	StorageController controller.IStorageController
	ReadController    controller.IReadController
	EmailController   controller.IEmailController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. Services
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	} else if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	publisherService := service.NewPublisherService(cfg.Keys.ExchangeLogTopic, pubSub, sysLogger)

	exchangeLogRepo := implementation.NewExchangeLogRepository(db)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ExchangeLogTopic,
		exchangeLogRepo,
		sysLogger,
	)

	verifier := grounding.NewVerifier(embeddingProvider, cfg.Ai.GatingThreshold, sysLogger)

	// Engine selection mirrors the deployment switch used for demos without
	// provider credentials.
	var engine chat.Engine
	if cfg.Ai.ChatEngine == "mock" {
		engine = chat.NewMockEngine()
		log.Printf("[INFO] Using Chat Engine: MOCK")
	} else {
		completionProvider := completion.NewOpenAIProvider(
			cfg.Keys.OpenAI,
			cfg.Ai.CompletionModel,
			cfg.Ai.VectorStoreId,
		)
		engine = chat.NewLiveEngine(completionProvider, verifier, publisherService, sysLogger)
		log.Printf("[INFO] Using Chat Engine: LIVE (%s)", cfg.Ai.CompletionModel)
	}

	chatService := service.NewChatService(engine, rdb)
	storageService := service.NewStorageService(rdb)
	readService := service.NewReadService()

	// 4. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		StorageController: controller.NewStorageController(storageService),
		ReadController:    controller.NewReadController(readService),
		EmailController:   controller.NewEmailController(emailService),

		ConsumerService: consumerService,
	}
}
