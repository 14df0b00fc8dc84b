package bootstrap

import (
	"context"
	"log"
	"time"

	"nexum-inventory-be/internal/config"
	"nexum-inventory-be/internal/controller"
	"nexum-inventory-be/internal/handler"
	"nexum-inventory-be/internal/pkg/logger"
	"nexum-inventory-be/internal/pkg/mailer"
	"nexum-inventory-be/internal/repository/unitofwork"
	"nexum-inventory-be/internal/service"
	"nexum-inventory-be/internal/websocket"
	"nexum-inventory-be/pkg/llm/factory"
	"nexum-inventory-be/pkg/planning"

	pktNats "nexum-inventory-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ProductController  controller.IProductController
	PlannerController  controller.IPlannerController
	PurchaseController controller.IPurchaseController
	ChatbotController  controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	AlertHandler *handler.AlertHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Reasoning provider. Construction fails fast when the configured
	// provider is missing its credential.
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/alerts.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Planner.StockAlertsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Planner.StockAlertsTopic,
		uowFactory,
		emailService,
		natsPub,
		wsHub, // Hub implements AlertDelivery
		cfg.Planner.AlertEmailsOn,
	)

	// The plan requestor is wrapped in the coalescer so concurrent dashboard
	// clicks share one reasoning call.
	requestor := planning.NewCoalescingRequestor(
		planning.NewPlanRequestor(llmProvider),
		time.Duration(cfg.Planner.PlanCacheTTLs)*time.Second,
	)

	authService := service.NewAuthService(uowFactory, natsPub, cfg.App.JwtSecret)
	productService := service.NewProductService(uowFactory, publisherService)
	suggestionService := service.NewSuggestionService(uowFactory)
	plannerService := service.NewPlannerService(uowFactory, requestor, natsPub, emailService, cfg.Planner.AlertEmailTo, cfg.Planner.CriticalCap)
	purchaseService := service.NewPurchaseService(uowFactory)
	chatbotService := service.NewChatbotService(uowFactory, plannerService, cfg.Planner.CriticalCap)

	// WebSocket Handler
	alertHandler := handler.NewAlertHandler(wsHub, wsLogger)

	sysLogger.Info("Bootstrap", "Container initialized", map[string]interface{}{
		"llm_provider": cfg.Ai.LLMProvider,
		"critical_cap": cfg.Planner.CriticalCap,
	})

	// 4. Controllers
	return &Container{
		AlertHandler: alertHandler,
		WebSocketHub: wsHub,

		AuthController:     controller.NewAuthController(authService),
		ProductController:  controller.NewProductController(productService, suggestionService),
		PlannerController:  controller.NewPlannerController(plannerService),
		PurchaseController: controller.NewPurchaseController(purchaseService),
		ChatbotController:  controller.NewChatbotController(chatbotService),

		ConsumerService: consumerService,
	}
}
