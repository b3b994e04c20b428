package slot

import (
	"context"
	"fmt"
	"sort"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	Scheduler              contracts.AvailabilityScheduler
	Locker                 contracts.LockerService
	InternalConfig         *config.InternalConfig
	Location               *time.Location
	Log                    *zap.Logger
	now                    func() time.Time
}

func NewScheduleUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	scheduler contracts.AvailabilityScheduler,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	loc *time.Location,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &scheduleUsecase{
		AvailabilityRepository: availabilityRepository,
		Scheduler:              scheduler,
		Locker:                 locker,
		InternalConfig:         internalConfig,
		Location:               loc,
		Log:                    logger,
		now:                    time.Now,
	}
}

func (uc *scheduleUsecase) ListWindows(ctx context.Context, practitionerID string) ([]responses.AvailabilityWindow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.ListWindows called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)

	windows, err := uc.AvailabilityRepository.ListByPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.AvailabilityWindow, 0, len(windows))
	for i := range windows {
		response = append(response, utils.ToAvailabilityWindowResponse(&windows[i]))
	}
	return response, nil
}

func (uc *scheduleUsecase) CreateWindow(ctx context.Context, practitionerID string, request *requests.UpsertAvailabilityWindow) (*responses.AvailabilityWindow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.CreateWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)

	now := uc.now().UTC()
	window := &models.AvailabilityWindow{
		ID:             utils.GenerateID(),
		PractitionerID: practitionerID,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if err := uc.applyRequest(window, request); err != nil {
		return nil, err
	}

	err := uc.withDayLocks(ctx, practitionerID, []int{window.DayOfWeek}, func() error {
		if err := uc.Scheduler.ValidateWindow(ctx, window, ""); err != nil {
			return err
		}
		return uc.AvailabilityRepository.Create(ctx, window)
	})
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventWindowCreated, requestID,
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingWindowIDKey, window.ID),
	)
	response := utils.ToAvailabilityWindowResponse(window)
	return &response, nil
}

func (uc *scheduleUsecase) UpdateWindow(ctx context.Context, practitionerID, windowID string, request *requests.UpsertAvailabilityWindow) (*responses.AvailabilityWindow, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.UpdateWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingWindowIDKey, windowID),
	)

	window, err := uc.findOwnedWindow(ctx, practitionerID, windowID)
	if err != nil {
		return nil, err
	}

	previousDay := window.DayOfWeek
	if err := uc.applyRequest(window, request); err != nil {
		return nil, err
	}
	window.UpdatedAt = uc.now().UTC()

	err = uc.withDayLocks(ctx, practitionerID, []int{previousDay, window.DayOfWeek}, func() error {
		if err := uc.Scheduler.ValidateWindow(ctx, window, window.ID); err != nil {
			return err
		}
		return uc.AvailabilityRepository.Update(ctx, window)
	})
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventWindowUpdated, requestID,
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingWindowIDKey, window.ID),
	)
	response := utils.ToAvailabilityWindowResponse(window)
	return &response, nil
}

func (uc *scheduleUsecase) DeleteWindow(ctx context.Context, practitionerID, windowID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.DeleteWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingWindowIDKey, windowID),
	)

	window, err := uc.findOwnedWindow(ctx, practitionerID, windowID)
	if err != nil {
		return err
	}
	if err := uc.AvailabilityRepository.Delete(ctx, window.ID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventWindowDeleted, requestID,
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingWindowIDKey, windowID),
	)
	return nil
}

func (uc *scheduleUsecase) ListSlots(ctx context.Context, practitionerID, date string) ([]responses.AvailableSlot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.ListSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.QueryParamDate, date),
	)

	day, err := utils.ParseDate(date, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	slots, err := uc.Scheduler.ListAvailableSlots(ctx, practitionerID, day)
	if err != nil {
		return nil, err
	}

	response := make([]responses.AvailableSlot, 0, len(slots))
	for _, s := range slots {
		response = append(response, responses.AvailableSlot{
			Time:     s.Time,
			Datetime: s.Datetime.Format(time.RFC3339),
		})
	}
	return response, nil
}

func (uc *scheduleUsecase) findOwnedWindow(ctx context.Context, practitionerID, windowID string) (*models.AvailabilityWindow, error) {
	window, err := uc.AvailabilityRepository.FindByID(ctx, windowID)
	if err != nil {
		return nil, err
	}
	// A window of another practitioner is reported as missing.
	if window == nil || window.PractitionerID != practitionerID {
		return nil, exceptions.ErrWindowNotFound(nil, windowID)
	}
	return window, nil
}

func (uc *scheduleUsecase) applyRequest(window *models.AvailabilityWindow, request *requests.UpsertAvailabilityWindow) error {
	if request.DayOfWeek != nil {
		window.DayOfWeek = *request.DayOfWeek
	}
	window.StartTime = request.StartTime
	window.EndTime = request.EndTime
	window.IsActive = true
	if request.IsActive != nil {
		window.IsActive = *request.IsActive
	}

	window.EffectiveFrom = nil
	if request.EffectiveFrom != "" {
		from, err := utils.ParseDate(request.EffectiveFrom, uc.Location)
		if err != nil {
			return exceptions.ErrInvalidFormat(err, "effective_from")
		}
		window.EffectiveFrom = &from
	}
	window.EffectiveTo = nil
	if request.EffectiveTo != "" {
		to, err := utils.ParseDate(request.EffectiveTo, uc.Location)
		if err != nil {
			return exceptions.ErrInvalidFormat(err, "effective_to")
		}
		window.EffectiveTo = &to
	}
	return nil
}

// withDayLocks runs fn while holding the schedule lock of every distinct day,
// acquired in ascending order so concurrent updates cannot deadlock.
func (uc *scheduleUsecase) withDayLocks(ctx context.Context, practitionerID string, days []int, fn func() error) error {
	requestID := utils.GetRequestID(ctx)
	ttl := uc.InternalConfig.Scheduling.LockTTL()

	sort.Ints(days)
	type heldLock struct{ key, token string }
	var held []heldLock
	defer func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := uc.Locker.Unlock(ctx, held[i].key, held[i].token); err != nil {
				uc.Log.Warn("scheduleUsecase.withDayLocks error releasing lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, held[i].key),
					zap.Error(err),
				)
			}
		}
	}()

	for i, day := range days {
		if i > 0 && day == days[i-1] {
			continue
		}
		key := dayLockKey(practitionerID, day)
		acquired, token, err := uc.Locker.TryLock(ctx, key, ttl)
		if err != nil {
			return exceptions.ErrRedisLock(err)
		}
		if !acquired {
			return exceptions.ErrScheduleLocked(nil, practitionerID)
		}
		held = append(held, heldLock{key: key, token: token})
	}
	return fn()
}

func dayLockKey(practitionerID string, dayOfWeek int) string {
	return fmt.Sprintf("%s%s:%d", constvars.RedisKeyScheduleLockPrefix, practitionerID, dayOfWeek)
}
