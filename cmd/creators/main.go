package main

import (
	"context"

	"creatorverse/internal/creators/events"
	"creatorverse/internal/creators/handler"
	"creatorverse/internal/creators/repository"
	"creatorverse/internal/creators/service"
	"creatorverse/internal/creators/validator"
	"creatorverse/pkg/app"
	"creatorverse/pkg/config"
)

const ServiceName = "creators"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetKafka()

	cfg.Log.Info("Starting Creators service")
	creatorService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewCreatorHandler(creatorService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.OnShutdown(func(ctx context.Context) {
		if err := creatorService.DrainEvents(ctx); err != nil {
			cfg.Log.Error("Creator events still pending at shutdown", "error", err)
		}
	})
	serverApp.Run()
}

func initServices(cfg *config.Config) service.CreatorService {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()
	if err := repository.EnsureIndexes(ctx, cfg); err != nil {
		cfg.Log.Error("Failed to ensure creator indexes", "error", err)
	}

	var publisher service.EventPublisher = events.NopPublisher{}
	if cfg.Client.Kafka != nil {
		publisher = events.NewKafkaPublisher(cfg.Client.Kafka)
	}

	creatorValidator := validator.NewCreatorValidator(cfg.Log)
	creatorRepo := repository.NewMongoCreatorRepository(cfg)
	creatorService := service.NewCreatorService(
		creatorRepo,
		creatorValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Creators service initialized", "database", cfg.MongoDatabaseName, "events", cfg.KafkaEnabled)
	return creatorService
}
