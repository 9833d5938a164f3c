package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/messaging"
	storageDriver "clinic-service/internal/app/drivers/storage"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/core/auth"
	"clinic-service/internal/app/services/core/dashboard"
	medicalRecords "clinic-service/internal/app/services/core/medical_records"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/app/services/core/users"
	"clinic-service/internal/app/services/shared/events"
	"clinic-service/internal/app/services/shared/jwtmanager"
	"clinic-service/internal/app/services/shared/redis"
	"clinic-service/internal/app/services/shared/storage"
	"clinic-service/internal/pkg/constvars"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrap.MongoDB, err = database.NewMongoDB(startupCtx, driverConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}

	if driverConfig.Redis.Enabled {
		bootstrap.Redis, err = database.NewRedisClient(startupCtx, driverConfig, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
	}

	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to initialize RabbitMQ", zap.Error(err))
		}
	}

	if err := bootstrapingTheApp(startupCtx, bootstrap); err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr), zap.String("base_path", internalConfig.App.BasePath()))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Token denylist
	var tokenDenylist contracts.TokenDenylist
	if bootstrap.Redis != nil {
		tokenDenylist = redis.NewTokenDenylist(redis.NewRedisRepository(bootstrap.Redis))
	} else {
		log.Warn("Redis disabled, logout will not revoke tokens before expiry")
		tokenDenylist = redis.NewNoopDenylist()
	}

	// Domain events
	eventPublisher := events.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.App.RabbitMQEventsExchange, log)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Attachment storage
	var backend storage.Backend
	switch internalConfig.Storage.Driver {
	case constvars.StorageDriverMinio:
		minioClient, err := storageDriver.NewMinio(ctx, bootstrap.DriverConfig, log)
		if err != nil {
			return err
		}
		backend = storage.NewMinioBackend(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	case constvars.StorageDriverLocal:
		fs, err := storageDriver.NewLocalFs(internalConfig, log)
		if err != nil {
			return err
		}
		backend = storage.NewAferoBackend(fs)
	default:
		return fmt.Errorf("unknown storage driver %q", internalConfig.Storage.Driver)
	}
	attachmentStore := storage.NewAttachmentStore(backend, internalConfig.Storage.AttachmentMaxSizeInBytes(), log)

	tokenIssuer, err := jwtmanager.NewJWTManager(internalConfig)
	if err != nil {
		return err
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)
	medicalRecordRepository := medicalRecords.NewMedicalRecordMongoRepository(bootstrap.MongoDB)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, tokenIssuer, tokenDenylist, log)
	userUsecase := users.NewUserUsecase(userRepository, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, eventPublisher, log)
	medicalRecordUsecase := medicalRecords.NewMedicalRecordUsecase(medicalRecordRepository, patientRepository, attachmentStore, internalConfig, log)
	dashboardUsecase := dashboard.NewDashboardUsecase(patientRepository, appointmentRepository, medicalRecordRepository, internalConfig, log)

	// Health checks
	checks := []controllers.DependencyCheck{
		{Name: "mongodb", Ping: func(ctx context.Context) error {
			return bootstrap.MongoDB.Client().Ping(ctx, nil)
		}},
	}
	if bootstrap.Redis != nil {
		checks = append(checks, controllers.DependencyCheck{Name: "redis", Ping: func(ctx context.Context) error {
			return bootstrap.Redis.Ping(ctx).Err()
		}})
	}

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(log, authUsecase, internalConfig),
		controllers.NewAuthController(log, authUsecase, internalConfig),
		controllers.NewUserController(log, userUsecase, internalConfig),
		controllers.NewPatientController(log, patientUsecase, internalConfig),
		controllers.NewAppointmentController(log, appointmentUsecase, internalConfig),
		controllers.NewMedicalRecordController(log, medicalRecordUsecase, internalConfig),
		controllers.NewDashboardController(log, dashboardUsecase),
		controllers.NewHealthController(log, checks...),
	)
	return nil
}
