package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/delivery/http/routers"
	"telecare-service/internal/app/drivers/database"
	"telecare-service/internal/app/drivers/logger"
	"telecare-service/internal/app/drivers/messaging"
	"telecare-service/internal/app/services/core/appointments"
	"telecare-service/internal/app/services/core/auth"
	"telecare-service/internal/app/services/core/broadcasts"
	"telecare-service/internal/app/services/core/roles"
	"telecare-service/internal/app/services/core/slot"
	"telecare-service/internal/app/services/core/users"
	"telecare-service/internal/app/services/shared/jwtmanager"
	"telecare-service/internal/app/services/shared/locker"
	"telecare-service/internal/app/services/shared/publisher"
	"telecare-service/internal/app/services/shared/ratelimiter"
	"telecare-service/internal/app/services/shared/redis"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapingTheApp(bootstrap, location); err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	cfg := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Roles
	hierarchy := roles.NewHierarchy(roles.DefaultRanks())
	matrix := roles.NewPermissionMatrix(roles.DefaultGrants())
	if err := matrix.Validate(hierarchy); err != nil {
		return err
	}
	guard := roles.NewAccessGuard(hierarchy, matrix)

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	eventPublisher, err := publisher.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		cfg.RabbitMQ.BookingQueue,
		cfg.RabbitMQ.BroadcastQueue,
	)
	if err != nil {
		return err
	}
	tokenCodec, err := jwtmanager.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL(), bootstrap.Logger)
	if err != nil {
		return err
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	availabilityMongoRepository := slot.NewAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, repository := range []interface{ EnsureIndexes(context.Context) error }{
		userMongoRepository,
		availabilityMongoRepository,
		appointmentMongoRepository,
	} {
		if err := repository.EnsureIndexes(indexCtx); err != nil {
			return err
		}
	}

	// Auth
	credentialTracker := auth.NewCredentialFailureTracker(
		resourceLimiter,
		cfg.Security.InvalidCredentialThreshold,
		time.Duration(cfg.Security.InvalidCredentialWindowInMinutes)*time.Minute,
		bootstrap.Logger,
	)
	identityResolver := auth.NewIdentityResolver(tokenCodec, credentialTracker, cfg.JWT.AccessTokenCookieName, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, tokenCodec, bootstrap.Logger)

	// Users
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)

	// Scheduling
	scheduler := slot.NewAvailabilityScheduler(availabilityMongoRepository, appointmentMongoRepository, location, bootstrap.Logger)
	scheduleUsecase := slot.NewScheduleUsecase(availabilityMongoRepository, scheduler, lockService, cfg, location, bootstrap.Logger)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, scheduler, eventPublisher, guard, cfg, bootstrap.Logger)

	// Broadcasts
	broadcastUsecase := broadcasts.NewBroadcastUsecase(eventPublisher, cfg, bootstrap.Logger)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, identityResolver, guard, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, &routers.Controllers{
		Auth:        controllers.NewAuthController(bootstrap.Logger, authUsecase, cfg),
		User:        controllers.NewUserController(bootstrap.Logger, userUsecase, cfg),
		Schedule:    controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase),
		Appointment: controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase),
		Broadcast:   controllers.NewBroadcastController(bootstrap.Logger, broadcastUsecase),
	})
	return nil
}
