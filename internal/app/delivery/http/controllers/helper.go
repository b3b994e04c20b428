package controllers

import (
	"context"
	"errors"
	"net/http"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const usecaseTimeout = constvars.UsecaseTimeout

// respondUsecaseError maps a usecase error to the error envelope, reporting an
// expired request context as a deadline error.
func respondUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
