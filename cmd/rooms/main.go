package main

import (
	"roomly/internal/rooms/handler"
	"roomly/internal/rooms/notifier"
	"roomly/internal/rooms/repository"
	"roomly/internal/rooms/service"
	"roomly/internal/rooms/validator"
	"roomly/pkg/app"
	"roomly/pkg/clock"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafka_config "roomly/pkg/kafka/config"
)

const ServiceName = "rooms"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Rooms service")

	serverApp := app.NewApplication(cfg)
	bookingService := initServices(cfg, serverApp)
	bookingValidator := validator.NewBookingValidator(cfg.Log)

	serverApp.SetApp(handler.NewRoomHandler(bookingService, bookingValidator, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config, serverApp *app.Application) service.BookingService {
	roomStore := repository.NewMongoRoomStore(cfg)
	bookingNotifier := initNotifier(cfg, serverApp)

	bookingService := service.NewBookingService(
		roomStore,
		bookingNotifier,
		clock.SystemClock{},
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}

func initNotifier(cfg *config.Config, serverApp *app.Application) notifier.Notifier {
	if !cfg.NotificationsEnabled {
		cfg.Log.Info("Booking notifications disabled")
		return notifier.NoopNotifier{}
	}

	producer, err := kafka.NewProducer(kafka_config.Load(), cfg.NotificationsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create notification producer", "error", err)
	}

	kafkaNotifier := notifier.NewKafkaNotifier(producer)
	serverApp.OnShutdown(func() {
		if err := kafkaNotifier.Close(); err != nil {
			cfg.Log.Error("Failed to close notification producer", "error", err)
		}
	})

	cfg.Log.Info("Booking notifications enabled", "topic", cfg.NotificationsTopic)
	return kafkaNotifier
}
