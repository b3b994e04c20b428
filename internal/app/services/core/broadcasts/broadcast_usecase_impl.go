package broadcasts

import (
	"context"
	"strings"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type broadcastUsecase struct {
	Publisher      contracts.EventPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewBroadcastUsecase(publisher contracts.EventPublisher, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BroadcastUsecase {
	return &broadcastUsecase{
		Publisher:      publisher,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

// Send queues a broadcast for delivery. Access is decided by the route guards;
// an empty target list addresses every role.
func (uc *broadcastUsecase) Send(ctx context.Context, principal *models.Principal, request *requests.SendBroadcast) (*responses.Broadcast, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("broadcastUsecase.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if principal == nil {
		return nil, exceptions.ErrUnauthenticated(nil)
	}

	targets := make([]string, 0, len(constvars.AllRoles))
	if len(request.TargetRoles) == 0 {
		for _, role := range constvars.AllRoles {
			targets = append(targets, role.String())
		}
	} else {
		seen := make(map[string]bool, len(request.TargetRoles))
		for _, role := range request.TargetRoles {
			role = strings.ToUpper(role)
			if !seen[role] {
				seen[role] = true
				targets = append(targets, role)
			}
		}
	}

	message := models.BroadcastMessage{
		ID:          utils.GenerateID(),
		SenderID:    principal.SubjectID,
		SenderRole:  principal.Role.String(),
		Title:       strings.TrimSpace(request.Title),
		Message:     request.Message,
		TargetRoles: targets,
		SentAt:      uc.now().UTC(),
	}

	queue := uc.InternalConfig.RabbitMQ.BroadcastQueue
	if err := uc.Publisher.Publish(ctx, queue, message); err != nil {
		uc.Log.Error("broadcastUsecase.Send error publishing broadcast",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, queue),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventBroadcastSent, requestID,
		zap.String(constvars.LoggingSubjectIDKey, principal.SubjectID),
		zap.Strings("target_roles", targets),
	)

	return &responses.Broadcast{
		ID:          message.ID,
		Title:       message.Title,
		TargetRoles: message.TargetRoles,
		SentAt:      message.SentAt,
	}, nil
}
