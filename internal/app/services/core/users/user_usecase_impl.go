package users

import (
	"context"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetUserByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectIDKey, userID),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	response := utils.ToUserResponse(user)
	return &response, nil
}

func (uc *userUsecase) ListUsers(ctx context.Context, request *requests.ListUsers) ([]responses.User, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	users, total, err := uc.UserRepository.List(ctx, models.UserFilter{
		Role:     constvars.RoleName(request.Role),
		Page:     request.Page,
		PageSize: request.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.User, 0, len(users))
	for i := range users {
		response = append(response, utils.ToUserResponse(&users[i]))
	}
	return response, total, nil
}
