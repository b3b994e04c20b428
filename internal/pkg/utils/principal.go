package utils

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
)

func ContextWithPrincipal(ctx context.Context, principal *models.Principal) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_PRINCIPAL_KEY, principal)
}

// PrincipalFromContext returns the principal attached by identity resolution, if any.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}
