package contracts

import (
	"context"
	"net/http"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

// TokenCodec issues and verifies signed session tokens.
type TokenCodec interface {
	Issue(subjectID string, role constvars.RoleName, accountType constvars.AccountType) (*models.SessionToken, error)
	Verify(tokenString string) (*models.Principal, error)
}

// IdentityResolver turns the credential carried by a request into a principal.
type IdentityResolver interface {
	Resolve(r *http.Request) (*models.Principal, error)
}

type CredentialFailureTracker interface {
	RecordFailure(ctx context.Context, source string) (int64, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Me(ctx context.Context, principal *models.Principal) (*responses.User, error)
}
