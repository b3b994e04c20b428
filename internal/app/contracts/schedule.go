package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"time"
)

type AvailabilityRepository interface {
	ListByPractitioner(ctx context.Context, practitionerID string) ([]models.AvailabilityWindow, error)
	ListActiveByDay(ctx context.Context, practitionerID string, dayOfWeek int) ([]models.AvailabilityWindow, error)
	FindByID(ctx context.Context, windowID string) (*models.AvailabilityWindow, error)
	Create(ctx context.Context, window *models.AvailabilityWindow) error
	Update(ctx context.Context, window *models.AvailabilityWindow) error
	Delete(ctx context.Context, windowID string) error
}

// AvailabilityScheduler makes the pure scheduling decisions over persisted windows and bookings.
type AvailabilityScheduler interface {
	ListAvailableSlots(ctx context.Context, practitionerID string, date time.Time) ([]models.AvailableSlot, error)
	ValidateBooking(ctx context.Context, request models.BookingRequest) error
	ValidateWindow(ctx context.Context, window *models.AvailabilityWindow, excludeID string) error
}

type ScheduleUsecase interface {
	ListWindows(ctx context.Context, practitionerID string) ([]responses.AvailabilityWindow, error)
	CreateWindow(ctx context.Context, practitionerID string, request *requests.UpsertAvailabilityWindow) (*responses.AvailabilityWindow, error)
	UpdateWindow(ctx context.Context, practitionerID, windowID string, request *requests.UpsertAvailabilityWindow) (*responses.AvailabilityWindow, error)
	DeleteWindow(ctx context.Context, practitionerID, windowID string) error
	ListSlots(ctx context.Context, practitionerID, date string) ([]responses.AvailableSlot, error)
}
