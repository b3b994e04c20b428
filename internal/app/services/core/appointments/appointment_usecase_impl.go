package appointments

import (
	"context"
	"errors"
	"strings"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/services/core/roles"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

var bookingRoles = []constvars.RoleName{constvars.RolePatient, constvars.RoleAdmin, constvars.RoleSuperadmin}

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Scheduler             contracts.AvailabilityScheduler
	Publisher             contracts.EventPublisher
	Guard                 *roles.AccessGuard
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	scheduler contracts.AvailabilityScheduler,
	publisher contracts.EventPublisher,
	guard *roles.AccessGuard,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		Scheduler:             scheduler,
		Publisher:             publisher,
		Guard:                 guard,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *appointmentUsecase) Book(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, request.PractitionerID),
	)

	if err := uc.Guard.RequireAnyRole(principal, bookingRoles...); err != nil {
		return nil, err
	}
	patientID, err := uc.resolvePatient(principal, request.PatientID)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	start = start.UTC().Truncate(time.Second)
	if !start.After(uc.now()) {
		return nil, exceptions.ErrNoAvailability(nil, "the start time must be in the future", "start time "+request.StartTime+" is not in the future")
	}

	duration := request.DurationMinutes
	if duration == 0 {
		duration = constvars.DefaultAppointmentMinutes
	}

	booking := models.BookingRequest{
		PractitionerID:  request.PractitionerID,
		PatientID:       patientID,
		ProposedStart:   start,
		DurationMinutes: duration,
	}
	if err := uc.Scheduler.ValidateBooking(ctx, booking); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	appointment := &models.Appointment{
		ID:              utils.GenerateID(),
		PractitionerID:  booking.PractitionerID,
		PatientID:       booking.PatientID,
		StartTime:       booking.ProposedStart,
		DurationMinutes: booking.DurationMinutes,
		Reason:          strings.TrimSpace(request.Reason),
		TimeModel:       models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	appointment.SetStatus(constvars.AppointmentStatusPending)

	// The unique index settles a race the pre-check lost.
	err = utils.LogOperation(uc.Log, constvars.OperationCreateAppointment, requestID, func() error {
		return uc.AppointmentRepository.Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventAppointmentBooked, requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPractitionerIDKey, appointment.PractitionerID),
		zap.String(constvars.LoggingSubjectIDKey, principal.SubjectID),
	)
	uc.publish(ctx, constvars.BusinessEventAppointmentBooked, appointment)

	response := utils.ToAppointmentResponse(appointment)
	return &response, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := uc.Guard.RequireOwnerOrElevated(principal, appointment.PractitionerID); err != nil {
		return nil, err
	}

	return uc.transition(ctx, appointment, constvars.AppointmentStatus(request.Status), "")
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// Either party of the appointment may cancel it.
	if err := uc.Guard.RequireOwnerOrElevated(principal, appointment.PatientID); err != nil {
		if uc.Guard.RequireOwnerOrElevated(principal, appointment.PractitionerID) != nil {
			return nil, err
		}
	}

	reason := ""
	if request != nil {
		reason = strings.TrimSpace(request.Reason)
	}
	return uc.transition(ctx, appointment, constvars.AppointmentStatusCancelled, reason)
}

func (uc *appointmentUsecase) ListByPractitioner(ctx context.Context, practitionerID, status string) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListByPractitioner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)

	filter := constvars.AppointmentStatus(strings.ToUpper(status))
	if filter != "" && !filter.IsValid() {
		return nil, exceptions.ErrInputValidation(errors.New("unknown appointment status " + status))
	}

	appointments, err := uc.AppointmentRepository.ListByPractitioner(ctx, practitionerID, filter)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, utils.ToAppointmentResponse(&appointments[i]))
	}
	return response, nil
}

// resolvePatient decides on whose behalf the booking is made. Patients always
// book for themselves; elevated roles must name the patient.
func (uc *appointmentUsecase) resolvePatient(principal *models.Principal, requestedPatientID string) (string, error) {
	if uc.Guard.IsElevated(principal) {
		if requestedPatientID == "" {
			return "", exceptions.ErrInputValidation(errors.New("patient_id is required when booking on behalf of a patient"))
		}
		return requestedPatientID, nil
	}
	if requestedPatientID != "" && requestedPatientID != principal.SubjectID {
		return "", exceptions.ErrForbiddenOwnership(nil, principal.Role, principal.SubjectID, requestedPatientID)
	}
	return principal.SubjectID, nil
}

func (uc *appointmentUsecase) findAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) transition(ctx context.Context, appointment *models.Appointment, next constvars.AppointmentStatus, cancelReason string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	previous := appointment.Status
	if !canTransition(previous, next) {
		return nil, exceptions.ErrInvalidStatusTransition(nil, previous, next)
	}

	appointment.SetStatus(next)
	appointment.CancelReason = cancelReason
	appointment.UpdatedAt = uc.now().UTC()
	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointment); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventAppointmentStatusChanged, requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(next)),
	)
	uc.publish(ctx, constvars.BusinessEventAppointmentStatusChanged, appointment)

	response := utils.ToAppointmentResponse(appointment)
	return &response, nil
}

// publish never fails the caller: the appointment is already persisted.
func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *models.Appointment) {
	if uc.Publisher == nil {
		return
	}
	queue := uc.InternalConfig.RabbitMQ.BookingQueue
	payload := models.AppointmentEvent{
		Event:           event,
		AppointmentID:   appointment.ID,
		PractitionerID:  appointment.PractitionerID,
		PatientID:       appointment.PatientID,
		StartTime:       appointment.StartTime,
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		OccurredAt:      uc.now().UTC(),
	}
	if err := uc.Publisher.Publish(ctx, queue, payload); err != nil {
		uc.Log.Error("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingQueueKey, queue),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func canTransition(from, to constvars.AppointmentStatus) bool {
	for _, allowed := range constvars.AppointmentStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
