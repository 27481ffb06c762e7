package bootstrap

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"notes-api-be/internal/config"
	"notes-api-be/internal/controller"
	"notes-api-be/internal/pkg/logger"
	"notes-api-be/internal/repository/unitofwork"
	"notes-api-be/internal/service"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

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

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.NoteTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.NoteTopic, sysLogger)

	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		NoteController:  controller.NewNoteController(noteService),
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
