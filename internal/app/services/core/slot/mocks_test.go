package slot

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) ListByPractitioner(ctx context.Context, practitionerID string) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, practitionerID)
	windows, _ := args.Get(0).([]models.AvailabilityWindow)
	return windows, args.Error(1)
}

func (m *MockAvailabilityRepository) ListActiveByDay(ctx context.Context, practitionerID string, dayOfWeek int) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, practitionerID, dayOfWeek)
	windows, _ := args.Get(0).([]models.AvailabilityWindow)
	return windows, args.Error(1)
}

func (m *MockAvailabilityRepository) FindByID(ctx context.Context, windowID string) (*models.AvailabilityWindow, error) {
	args := m.Called(ctx, windowID)
	window, _ := args.Get(0).(*models.AvailabilityWindow)
	return window, args.Error(1)
}

func (m *MockAvailabilityRepository) Create(ctx context.Context, window *models.AvailabilityWindow) error {
	return m.Called(ctx, window).Error(0)
}

func (m *MockAvailabilityRepository) Update(ctx context.Context, window *models.AvailabilityWindow) error {
	return m.Called(ctx, window).Error(0)
}

func (m *MockAvailabilityRepository) Delete(ctx context.Context, windowID string) error {
	return m.Called(ctx, windowID).Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveAt(ctx context.Context, practitionerID string, startTime time.Time) (*models.Appointment, error) {
	args := m.Called(ctx, practitionerID, startTime)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) ListActiveBetween(ctx context.Context, practitionerID string, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, practitionerID, from, to)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) ListByPractitioner(ctx context.Context, practitionerID string, status constvars.AppointmentStatus) ([]models.Appointment, error) {
	args := m.Called(ctx, practitionerID, status)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointment *models.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}
