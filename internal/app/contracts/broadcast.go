package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type BroadcastUsecase interface {
	Send(ctx context.Context, principal *models.Principal, request *requests.SendBroadcast) (*responses.Broadcast, error)
}
