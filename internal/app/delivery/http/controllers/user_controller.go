package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)
	request := &requests.ListUsers{
		Role:       strings.ToUpper(r.URL.Query().Get(constvars.QueryParamRole)),
		Pagination: *pagination,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	users, total, err := ctrl.UserUsecase.ListUsers(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	baseURL := fmt.Sprintf("%s/%s/%s/users",
		ctrl.InternalConfig.App.Address,
		ctrl.InternalConfig.App.EndpointPrefix,
		ctrl.InternalConfig.App.Version,
	)
	paginationResponse := utils.BuildPaginationResponse(total, request.Page, request.PageSize, baseURL)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListUsersSuccess, paginationResponse, users)
}

func (ctrl *UserController) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, constvars.URLParamUserID)
	if err := utils.ValidateUrlParamID(userID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamUserID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	user, err := ctrl.UserUsecase.GetUserByID(ctx, userID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUserSuccess, user)
}
