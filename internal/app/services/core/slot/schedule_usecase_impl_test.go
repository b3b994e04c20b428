package slot

import (
	"context"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/services/shared/locker"
	redisrepo "telecare-service/internal/app/services/shared/redis"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{Scheduling: config.AppScheduling{LockTTLInSeconds: 10}}
}

func upsertRequest(day int, start, end string) *requests.UpsertAvailabilityWindow {
	return &requests.UpsertAvailabilityWindow{DayOfWeek: &day, StartTime: start, EndTime: end}
}

func newScheduleFixture(windows []models.AvailabilityWindow) (*MockAvailabilityRepository, *MockLockerService, *scheduleUsecase) {
	availability, _, scheduler := newScheduler(windows)
	lock := new(MockLockerService)
	uc := NewScheduleUsecase(availability, scheduler, lock, testInternalConfig(), time.UTC, zap.NewNop()).(*scheduleUsecase)
	uc.now = func() time.Time { return monday.Add(8 * time.Hour) }
	return availability, lock, uc
}

func TestScheduleUsecase_CreateWindow(t *testing.T) {
	ctx := context.Background()
	lockKey := "schedule:lock:doc-1:1"

	t.Run("validates and stores under the day lock", func(t *testing.T) {
		availability, lock, uc := newScheduleFixture([]models.AvailabilityWindow{mondayWindow("w-1", "09:00", "10:00")})
		lock.On("TryLock", mock.Anything, lockKey, 10*time.Second).Return(true, "token-1", nil).Once()
		lock.On("Unlock", mock.Anything, lockKey, "token-1").Return(nil).Once()
		availability.On("Create", mock.Anything, mock.AnythingOfType("*models.AvailabilityWindow")).Return(nil).Once()

		res, err := uc.CreateWindow(ctx, practitionerID, upsertRequest(1, "10:00", "11:00"))
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, practitionerID, res.PractitionerID)
		assert.True(t, res.IsActive)
		lock.AssertExpectations(t)
		availability.AssertExpectations(t)
	})

	t.Run("overlap is rejected and the lock is still released", func(t *testing.T) {
		availability, lock, uc := newScheduleFixture([]models.AvailabilityWindow{mondayWindow("w-1", "09:00", "10:00")})
		lock.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(true, "token-2", nil).Once()
		lock.On("Unlock", mock.Anything, lockKey, "token-2").Return(nil).Once()

		_, err := uc.CreateWindow(ctx, practitionerID, upsertRequest(1, "09:30", "10:30"))
		requireCustomStatus(t, err, constvars.StatusConflict)
		availability.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		lock.AssertExpectations(t)
	})

	t.Run("held lock fails fast with a retryable conflict", func(t *testing.T) {
		availability, lock, uc := newScheduleFixture(nil)
		lock.On("TryLock", mock.Anything, lockKey, mock.Anything).Return(false, "", nil).Once()

		_, err := uc.CreateWindow(ctx, practitionerID, upsertRequest(1, "10:00", "11:00"))
		customErr := requireCustomStatus(t, err, constvars.StatusConflict)
		assert.True(t, customErr.Retryable)
		assert.Equal(t, constvars.ErrClientScheduleBusy, customErr.ClientMessage)
		availability.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		lock.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScheduleUsecase_CreateWindow_RedisLockContention(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	redisLocker := locker.NewLockService(redisrepo.NewRedisRepository(client), zap.NewNop())
	availability, _, scheduler := newScheduler(nil)
	availability.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := NewScheduleUsecase(availability, scheduler, redisLocker, testInternalConfig(), time.UTC, zap.NewNop())
	ctx := context.Background()

	acquired, token, err := redisLocker.TryLock(ctx, dayLockKey(practitionerID, 1), time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = uc.CreateWindow(ctx, practitionerID, upsertRequest(1, "10:00", "11:00"))
	requireCustomStatus(t, err, constvars.StatusConflict)

	require.NoError(t, redisLocker.Unlock(ctx, dayLockKey(practitionerID, 1), token))

	_, err = uc.CreateWindow(ctx, practitionerID, upsertRequest(1, "10:00", "11:00"))
	require.NoError(t, err)
	assert.False(t, mr.Exists(dayLockKey(practitionerID, 1)), "lock released after the write")
}

func TestScheduleUsecase_UpdateWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("moving a window locks both days in order", func(t *testing.T) {
		existing := mondayWindow("w-1", "09:00", "10:00")
		availability, lock, uc := newScheduleFixture([]models.AvailabilityWindow{existing})
		availability.On("FindByID", mock.Anything, "w-1").Return(&existing, nil)
		availability.On("ListActiveByDay", mock.Anything, practitionerID, int(time.Wednesday)).Return([]models.AvailabilityWindow{}, nil)
		availability.On("Update", mock.Anything, mock.Anything).Return(nil)

		var order []string
		lock.On("TryLock", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { order = append(order, args.String(1)) }).
			Return(true, "token", nil)
		lock.On("Unlock", mock.Anything, mock.Anything, "token").Return(nil)

		res, err := uc.UpdateWindow(ctx, practitionerID, "w-1", upsertRequest(int(time.Wednesday), "09:00", "10:00"))
		require.NoError(t, err)
		assert.Equal(t, int(time.Wednesday), res.DayOfWeek)
		assert.Equal(t, []string{"schedule:lock:doc-1:1", "schedule:lock:doc-1:3"}, order)
		lock.AssertNumberOfCalls(t, "Unlock", 2)
	})

	t.Run("window of another practitioner is not found", func(t *testing.T) {
		foreign := mondayWindow("w-9", "09:00", "10:00")
		foreign.PractitionerID = "doc-2"
		availability, lock, uc := newScheduleFixture(nil)
		availability.On("FindByID", mock.Anything, "w-9").Return(&foreign, nil)

		_, err := uc.UpdateWindow(ctx, practitionerID, "w-9", upsertRequest(1, "11:00", "12:00"))
		requireCustomStatus(t, err, constvars.StatusNotFound)
		lock.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScheduleUsecase_DeleteWindow(t *testing.T) {
	existing := mondayWindow("w-1", "09:00", "10:00")
	availability, _, uc := newScheduleFixture(nil)
	availability.On("FindByID", mock.Anything, "w-1").Return(&existing, nil)
	availability.On("FindByID", mock.Anything, "missing").Return(nil, nil)
	availability.On("Delete", mock.Anything, "w-1").Return(nil)
	ctx := context.Background()

	require.NoError(t, uc.DeleteWindow(ctx, practitionerID, "w-1"))
	requireCustomStatus(t, uc.DeleteWindow(ctx, practitionerID, "missing"), constvars.StatusNotFound)
}

func TestScheduleUsecase_ListSlots(t *testing.T) {
	_, _, uc := newScheduleFixture([]models.AvailabilityWindow{mondayWindow("w-1", "09:00", "10:00")})
	uc.Scheduler.(*availabilityScheduler).AppointmentRepository.(*MockAppointmentRepository).
		On("ListActiveBetween", mock.Anything, practitionerID, mock.Anything, mock.Anything).Return([]models.Appointment{}, nil)
	ctx := context.Background()

	slots, err := uc.ListSlots(ctx, practitionerID, "2025-01-06")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "2025-01-06T09:00:00Z", slots[0].Datetime)

	_, err = uc.ListSlots(ctx, practitionerID, "06/01/2025")
	requireCustomStatus(t, err, constvars.StatusBadRequest)
}

func TestScheduleUsecase_CreateWindowRejectsMalformedEffectiveDates(t *testing.T) {
	ctx := context.Background()

	for _, field := range []string{"effective_from", "effective_to"} {
		t.Run(field, func(t *testing.T) {
			availability, lock, uc := newScheduleFixture(nil)
			request := upsertRequest(1, "10:00", "11:00")
			if field == "effective_from" {
				request.EffectiveFrom = "2025-13-40"
			} else {
				request.EffectiveTo = "2025-13-40"
			}

			_, err := uc.CreateWindow(ctx, practitionerID, request)
			customErr := requireCustomStatus(t, err, constvars.StatusBadRequest)
			assert.Equal(t, field+" has an invalid format", customErr.ClientMessage)
			assert.Contains(t, customErr.DevMessage, field)
			lock.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
			availability.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}
