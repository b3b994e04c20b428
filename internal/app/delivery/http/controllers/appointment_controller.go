package controllers

import (
	"context"
	"net/http"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointment)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	principal, _ := utils.PrincipalFromContext(ctx)
	appointment, err := ctrl.AppointmentUsecase.Book(ctx, principal, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccess, appointment)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if err := utils.ValidateUrlParamID(appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.UpdateAppointmentStatus)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	principal, _ := utils.PrincipalFromContext(ctx)
	appointment, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, principal, appointmentID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccess, appointment)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if err := utils.ValidateUrlParamID(appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	// The body is optional.
	request := new(requests.CancelAppointment)
	if r.ContentLength != 0 {
		if err := utils.DecodeAndValidate(r, request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	principal, _ := utils.PrincipalFromContext(ctx)
	appointment, err := ctrl.AppointmentUsecase.Cancel(ctx, principal, appointmentID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccess, appointment)
}

func (ctrl *AppointmentController) ListByPractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, constvars.URLParamPractitionerID)
	if err := utils.ValidateUrlParamID(practitionerID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPractitionerID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.ListByPractitioner(ctx, practitionerID, r.URL.Query().Get(constvars.QueryParamStatus))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAppointmentsSuccess, appointments)
}
