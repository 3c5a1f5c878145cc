package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doorspital-service/internal/app/config"
	"doorspital-service/internal/app/delivery/http/controllers"
	"doorspital-service/internal/app/delivery/http/middlewares"
	"doorspital-service/internal/app/delivery/http/routers"
	"doorspital-service/internal/app/drivers/database"
	"doorspital-service/internal/app/drivers/logger"
	"doorspital-service/internal/app/drivers/messaging"
	"doorspital-service/internal/app/drivers/storage"
	"doorspital-service/internal/app/services/auth"
	"doorspital-service/internal/app/services/chat"
	"doorspital-service/internal/app/services/doctors"
	"doorspital-service/internal/app/services/notifications"
	"doorspital-service/internal/app/services/pharmacies"
	"doorspital-service/internal/app/services/registrations"
	"doorspital-service/internal/app/services/shared/audit"
	"doorspital-service/internal/app/services/shared/backendclient"
	"doorspital-service/internal/app/services/shared/events"
	"doorspital-service/internal/app/services/shared/loader"
	"doorspital-service/internal/app/services/shared/redis"
	"doorspital-service/internal/app/services/shared/sessions"
	sharedstorage "doorspital-service/internal/app/services/shared/storage"
	"doorspital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	chatPoller := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	pollerCtx, stopPoller := context.WithCancel(context.Background())
	go chatPoller.Run(pollerCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	stopPoller()
	chatPoller.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) *chat.Poller {
	zapLogger := logger.NewZapLogger(bootstrap.DriverConfig, bootstrap.InternalConfig)

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	tracker := loader.NewTracker()
	auditRepository := audit.NewAuditMongoRepository(bootstrap.MongoDB)
	backendClient := backendclient.NewDoorspitalBackendClient(
		bootstrap.InternalConfig.Backend.BaseUrl,
		tracker,
		auditRepository,
		zapLogger,
	)

	sessionExp := time.Duration(bootstrap.InternalConfig.Session.ExpTimeInHour) * time.Hour
	doctorSessions := sessions.NewRedisSessionRepository(redisRepository, constvars.RedisKeyDoctorSession, sessionExp)
	pharmacySessions := sessions.NewRedisSessionRepository(redisRepository, constvars.RedisKeyPharmacySession, sessionExp)

	objectStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	eventPublisher, err := events.NewRabbitMQEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQEventsQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to declare events queue: %v", err)
	}

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:              zapLogger,
		DoctorSessions:   doctorSessions,
		PharmacySessions: pharmacySessions,
		JWTSecret:        bootstrap.InternalConfig.JWT.Secret,
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(
		backendClient,
		doctorSessions,
		pharmacySessions,
		bootstrap.InternalConfig.JWT.Secret,
		bootstrap.InternalConfig.JWT.ExpTimeInHour,
		zapLogger,
	)
	authController := controllers.NewAuthController(zapLogger, authUsecase, bootstrap.InternalConfig.JWT.Secret)

	// Registration
	registrationUsecase := registrations.NewRegistrationUsecase(
		backendClient,
		redisRepository,
		objectStorage,
		eventPublisher,
		bootstrap.DriverConfig.Minio.BucketName,
		time.Duration(bootstrap.InternalConfig.Session.DraftExpTimeInHour)*time.Hour,
		zapLogger,
	)
	registrationController := controllers.NewRegistrationController(
		zapLogger,
		registrationUsecase,
		bootstrap.InternalConfig.App.KYCDocumentMaxUploadSizeInMB,
	)

	// Doctor
	doctorBackendClient := doctors.NewDoctorBackendClient(backendClient)
	doctorUsecase := doctors.NewDoctorUsecase(doctorBackendClient, zapLogger)
	doctorController := controllers.NewDoctorController(zapLogger, doctorUsecase)

	// Notifications
	notificationUsecase := notifications.NewNotificationUsecase(backendClient, zapLogger)
	notificationController := controllers.NewNotificationController(zapLogger, notificationUsecase)

	// Chat
	chatBackendClient := chat.NewChatBackendClient(backendClient)
	pollInterval := time.Duration(bootstrap.InternalConfig.Chat.PollIntervalInSeconds) * time.Second
	chatPoller := chat.NewPoller(
		chatBackendClient,
		redisRepository,
		pollInterval,
		bootstrap.InternalConfig.Chat.PollRatePerSecond,
		zapLogger,
	)
	chatUsecase := chat.NewChatUsecase(chatBackendClient, redisRepository, chatPoller, 2*pollInterval, zapLogger)
	chatController := controllers.NewChatController(zapLogger, chatUsecase)

	// Pharmacy
	pharmacyBackendClient := pharmacies.NewPharmacyBackendClient(backendClient)
	pharmacyUsecase := pharmacies.NewPharmacyUsecase(pharmacyBackendClient, eventPublisher, zapLogger)
	pharmacyController := controllers.NewPharmacyController(zapLogger, pharmacyUsecase)

	// Status
	statusController := controllers.NewStatusController(zapLogger, tracker, bootstrap.InternalConfig.App.Version)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		statusController,
		authController,
		registrationController,
		doctorController,
		notificationController,
		chatController,
		pharmacyController,
	)

	return chatPoller
}
