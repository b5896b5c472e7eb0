package main

import (
	"log"

	"github.com/bookatable/reservation-service/config"
	"github.com/bookatable/reservation-service/internal/handler"
	"github.com/bookatable/reservation-service/internal/mailer"
	"github.com/bookatable/reservation-service/internal/middleware"
	"github.com/bookatable/reservation-service/internal/notifier"
	"github.com/bookatable/reservation-service/internal/repository"
	"github.com/bookatable/reservation-service/internal/service"
	"github.com/bookatable/reservation-service/pkg/database"
	"github.com/bookatable/reservation-service/pkg/rabbitmq"
	"github.com/bookatable/reservation-service/pkg/validation"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db := database.NewPostgresDB(cfg.DSN())
	if cfg.SeedData {
		database.Seed(db)
	}

	// RabbitMQ publisher: reservation notifications out
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		sugar.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// RabbitMQ consumer: mailer worker turns notifications into email
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		sugar.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		sugar.Fatalf("failed to start consuming: %v", err)
	}

	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	mailer.NewWorker(sender, sugar).Start(msgs)

	// Repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Services
	notify := notifier.New(publisher, sugar)
	reservationSvc := service.NewReservationService(reservationRepo, restaurantRepo, notify, cfg.FrontendURL, sugar)
	restaurantSvc := service.NewRestaurantService(restaurantRepo)

	// Echo
	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			sugar.Infow("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewReservationHandler(reservationSvc).RegisterRoutes(e)
	handler.NewRestaurantHandler(restaurantSvc).RegisterRoutes(e)

	sugar.Infof("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
