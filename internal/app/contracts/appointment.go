package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentRepository interface {
	// Create fails with a SlotTaken error when another active appointment holds the same start.
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindActiveAt(ctx context.Context, practitionerID string, startTime time.Time) (*models.Appointment, error)
	ListActiveBetween(ctx context.Context, practitionerID string, from, to time.Time) ([]models.Appointment, error)
	ListByPractitioner(ctx context.Context, practitionerID string, status constvars.AppointmentStatus) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointment *models.Appointment) error
}

type AppointmentUsecase interface {
	Book(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	Cancel(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error)
	ListByPractitioner(ctx context.Context, practitionerID, status string) ([]responses.Appointment, error)
}
