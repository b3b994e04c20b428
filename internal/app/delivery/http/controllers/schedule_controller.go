package controllers

import (
	"context"
	"errors"
	"net/http"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) ListWindows(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := ctrl.urlParam(w, r, constvars.URLParamPractitionerID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	windows, err := ctrl.ScheduleUsecase.ListWindows(ctx, practitionerID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAvailabilitySuccess, windows)
}

func (ctrl *ScheduleController) CreateWindow(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := ctrl.urlParam(w, r, constvars.URLParamPractitionerID)
	if !ok {
		return
	}

	request := new(requests.UpsertAvailabilityWindow)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	window, err := ctrl.ScheduleUsecase.CreateWindow(ctx, practitionerID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAvailabilitySuccess, window)
}

func (ctrl *ScheduleController) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := ctrl.urlParam(w, r, constvars.URLParamPractitionerID)
	if !ok {
		return
	}
	windowID, ok := ctrl.urlParam(w, r, constvars.URLParamWindowID)
	if !ok {
		return
	}

	request := new(requests.UpsertAvailabilityWindow)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	window, err := ctrl.ScheduleUsecase.UpdateWindow(ctx, practitionerID, windowID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccess, window)
}

func (ctrl *ScheduleController) DeleteWindow(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := ctrl.urlParam(w, r, constvars.URLParamPractitionerID)
	if !ok {
		return
	}
	windowID, ok := ctrl.urlParam(w, r, constvars.URLParamWindowID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	if err := ctrl.ScheduleUsecase.DeleteWindow(ctx, practitionerID, windowID); err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAvailabilitySuccess, nil)
}

func (ctrl *ScheduleController) ListSlots(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := ctrl.urlParam(w, r, constvars.URLParamPractitionerID)
	if !ok {
		return
	}

	date := r.URL.Query().Get(constvars.QueryParamDate)
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(errors.New("date query parameter is required")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	slots, err := ctrl.ScheduleUsecase.ListSlots(ctx, practitionerID, date)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListSlotsSuccess, slots)
}

func (ctrl *ScheduleController) urlParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if err := utils.ValidateUrlParamID(value); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, name))
		return "", false
	}
	return value, true
}
