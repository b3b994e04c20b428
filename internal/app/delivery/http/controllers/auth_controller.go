package controllers

import (
	"context"
	"net/http"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginUser)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.InternalConfig.JWT.AccessTokenCookieName,
		Value:    result.AccessToken,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.JWT.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

// Logout only clears the cookie. Issued tokens stay valid until they expire.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.InternalConfig.JWT.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.JWT.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	principal, found := utils.PrincipalFromContext(r.Context())
	if !found {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnauthenticated(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	user, err := ctrl.AuthUsecase.Me(ctx, principal)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMeSuccess, user)
}
