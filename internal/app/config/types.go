package config

import "time"

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type InternalConfig struct {
	App        App
	JWT        AppJWT
	Security   AppSecurity
	Scheduling AppScheduling
	RabbitMQ   AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	FrontendDomain             string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret                string
	ExpTimeInHour         int
	AccessTokenCookieName string
	CookieSecure          bool
}

type AppSecurity struct {
	InvalidCredentialThreshold       int
	InvalidCredentialWindowInMinutes int
	LoginMaxAttempts                 int
	LoginBlockTimeInMinutes          int
}

type AppScheduling struct {
	LockTTLInSeconds int
}

type AppRabbitMQ struct {
	BookingQueue   string
	BroadcastQueue string
}

func (c AppJWT) TTL() time.Duration {
	return time.Duration(c.ExpTimeInHour) * time.Hour
}

func (c AppScheduling) LockTTL() time.Duration {
	return time.Duration(c.LockTTLInSeconds) * time.Second
}
