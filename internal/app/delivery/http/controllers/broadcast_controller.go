package controllers

import (
	"context"
	"net/http"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type BroadcastController struct {
	Log              *zap.Logger
	BroadcastUsecase contracts.BroadcastUsecase
}

func NewBroadcastController(logger *zap.Logger, broadcastUsecase contracts.BroadcastUsecase) *BroadcastController {
	return &BroadcastController{
		Log:              logger,
		BroadcastUsecase: broadcastUsecase,
	}
}

func (ctrl *BroadcastController) Send(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendBroadcast)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	principal, _ := utils.PrincipalFromContext(ctx)
	broadcast, err := ctrl.BroadcastUsecase.Send(ctx, principal, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BroadcastSentSuccess, broadcast)
}
