package auth

import (
	"context"
	"strings"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	TokenCodec     contracts.TokenCodec
	Log            *zap.Logger
}

func NewAuthUsecase(userRepository contracts.UserRepository, tokenCodec contracts.TokenCodec, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		TokenCodec:     tokenCodec,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.ToLower(strings.TrimSpace(request.Email))
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Unknown email, wrong password and deactivated accounts look the same to the caller.
	if user == nil || !user.IsActive || !utils.CheckPasswordHash(request.Password, user.Password) {
		utils.LogSecurityEvent(uc.Log, constvars.SecurityEventLoginFailed, requestID, constvars.SecuritySeverityLow)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	token, err := uc.TokenCodec.Issue(user.ID, user.Role, user.AccountTypeOrDefault())
	if err != nil {
		uc.Log.Error("authUsecase.Login error issuing session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenSigning(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)

	return &responses.LoginUser{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		User:        utils.ToUserResponse(user),
	}, nil
}

func (uc *authUsecase) Me(ctx context.Context, principal *models.Principal) (*responses.User, error) {
	if principal == nil {
		return nil, exceptions.ErrUnauthenticated(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, principal.SubjectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	response := utils.ToUserResponse(user)
	// The token is authoritative for the current session's role.
	response.Role = string(principal.Role)
	response.AccountType = string(principal.AccountType)
	return &response, nil
}
