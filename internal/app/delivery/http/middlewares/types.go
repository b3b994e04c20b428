package middlewares

import (
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/services/core/roles"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	IdentityResolver contracts.IdentityResolver
	Guard            *roles.AccessGuard
	InternalConfig   *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, identityResolver contracts.IdentityResolver, guard *roles.AccessGuard, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:              logger,
		IdentityResolver: identityResolver,
		Guard:            guard,
		InternalConfig:   internalConfig,
	}
}
