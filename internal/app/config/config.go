package config

import (
	"errors"
	"fmt"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")
	ErrLockTTLTooShort  = errors.New("SCHEDULE_LOCK_TTL_IN_SECONDS must exceed the usecase timeout")
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telecare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
		},
		JWT: AppJWT{
			Secret:                utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour:         utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
			AccessTokenCookieName: utils.GetEnvString("JWT_ACCESS_TOKEN_COOKIE_NAME", "accessToken"),
			CookieSecure:          utils.GetEnvBool("JWT_COOKIE_SECURE", false),
		},
		Security: AppSecurity{
			InvalidCredentialThreshold:       utils.GetEnvInt("SECURITY_INVALID_CREDENTIAL_THRESHOLD", 5),
			InvalidCredentialWindowInMinutes: utils.GetEnvInt("SECURITY_INVALID_CREDENTIAL_WINDOW_IN_MINUTES", 15),
			LoginMaxAttempts:                 utils.GetEnvInt("SECURITY_LOGIN_MAX_ATTEMPTS", 5),
			LoginBlockTimeInMinutes:          utils.GetEnvInt("SECURITY_LOGIN_BLOCK_TIME_IN_MINUTES", 15),
		},
		Scheduling: AppScheduling{
			LockTTLInSeconds: utils.GetEnvInt("SCHEDULE_LOCK_TTL_IN_SECONDS", 30),
		},
		RabbitMQ: AppRabbitMQ{
			BookingQueue:   utils.GetEnvString("APP_RABBITMQ_BOOKING_QUEUE", "appointment_booking"),
			BroadcastQueue: utils.GetEnvString("APP_RABBITMQ_BROADCAST_QUEUE", "broadcast"),
		},
	}
}

// Validate rejects configurations the service cannot start with.
func (c *InternalConfig) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	if c.Scheduling.LockTTL() <= constvars.UsecaseTimeout {
		return fmt.Errorf("%w: %s <= %s", ErrLockTTLTooShort, c.Scheduling.LockTTL(), constvars.UsecaseTimeout)
	}
	return nil
}
