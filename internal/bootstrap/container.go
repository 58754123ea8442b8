package bootstrap

import (
	"log"

	"rental-asistente-be/internal/config"
	"rental-asistente-be/internal/controller"
	"rental-asistente-be/internal/pkg/logger"
	"rental-asistente-be/internal/repository/memory"
	"rental-asistente-be/internal/repository/unitofwork"
	"rental-asistente-be/internal/service"
	"rental-asistente-be/pkg/discovery/classifier"
	"rental-asistente-be/pkg/discovery/index"

	pktNats "rental-asistente-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController    controller.IAssistantController
	CatalogController      controller.ICatalogController
	NotificationController controller.INotificationController

	// Background services (exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Discovery engine
	// The index is process-wide and rebuilt lazily after each invalidation.
	catalogSource := service.NewCatalogSource(uowFactory)
	indexCache := index.NewCache(catalogSource)
	intentClassifier := classifier.New(indexCache)

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Topics.CatalogChanged, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.CatalogChanged,
		indexCache,
		sysLogger,
	)

	catalogService := service.NewCatalogService(uowFactory, publisherService)
	assistantService := service.NewAssistantService(
		uowFactory,
		sessionRepo,
		intentClassifier,
		indexCache,
		natsPub,
		sysLogger,
	)

	notifService := service.NewNotificationService(uowFactory, natsSub, sysLogger)
	if natsSub != nil {
		notifService.Start()
	}

	// 5. Controllers
	return &Container{
		AssistantController:    controller.NewAssistantController(assistantService),
		CatalogController:      controller.NewCatalogController(catalogService),
		NotificationController: controller.NewNotificationController(notifService),

		ConsumerService:     consumerService,
		NotificationService: notifService,

		Logger: sysLogger,
	}
}
