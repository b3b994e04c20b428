package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

// UserRepository is the user directory. Lookups return nil, nil when the user does not exist.
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
}

type UserUsecase interface {
	GetUserByID(ctx context.Context, userID string) (*responses.User, error)
	ListUsers(ctx context.Context, request *requests.ListUsers) ([]responses.User, int, error)
}
