package slot

import (
	"context"
	"fmt"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type availabilityScheduler struct {
	AvailabilityRepository contracts.AvailabilityRepository
	AppointmentRepository  contracts.AppointmentRepository
	Location               *time.Location
	SlotMinutes            int
	Log                    *zap.Logger
}

// NewAvailabilityScheduler interprets window wall clocks in loc. A nil loc means UTC.
func NewAvailabilityScheduler(
	availabilityRepository contracts.AvailabilityRepository,
	appointmentRepository contracts.AppointmentRepository,
	loc *time.Location,
	logger *zap.Logger,
) contracts.AvailabilityScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &availabilityScheduler{
		AvailabilityRepository: availabilityRepository,
		AppointmentRepository:  appointmentRepository,
		Location:               loc,
		SlotMinutes:            constvars.SlotGranularityInMinutes,
		Log:                    logger,
	}
}

func (s *availabilityScheduler) ListAvailableSlots(ctx context.Context, practitionerID string, date time.Time) ([]models.AvailableSlot, error) {
	requestID := utils.GetRequestID(ctx)
	day := utils.StartOfDay(date.In(s.Location))

	windows, err := s.windowsOn(ctx, practitionerID, day)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []models.AvailableSlot{}, nil
	}

	var starts []time.Time
	for _, w := range windows {
		starts = append(starts, generateSlotsBetween(w.on(day), s.SlotMinutes)...)
	}
	starts = dedupeSorted(starts)

	booked, err := s.AppointmentRepository.ListActiveBetween(ctx, practitionerID, day, day.AddDate(0, 0, 1))
	if err != nil {
		s.Log.Error("availabilityScheduler.ListAvailableSlots error listing booked appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.Error(err),
		)
		return nil, err
	}
	taken := make(map[int64]struct{}, len(booked))
	for _, appointment := range booked {
		taken[appointment.StartTime.Unix()] = struct{}{}
	}

	slots := make([]models.AvailableSlot, 0, len(starts))
	for _, start := range starts {
		if _, ok := taken[start.Unix()]; ok {
			continue
		}
		slots = append(slots, models.AvailableSlot{
			Time:     start.Format(constvars.LayoutClock),
			Datetime: start,
		})
	}

	s.Log.Debug("availabilityScheduler.ListAvailableSlots computed slots",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.Int("windows", len(windows)),
		zap.Int("booked", len(booked)),
		zap.Int("slots", len(slots)),
	)
	return slots, nil
}

func (s *availabilityScheduler) ValidateBooking(ctx context.Context, request models.BookingRequest) error {
	proposed := request.ProposedStart.In(s.Location)
	day := utils.StartOfDay(proposed)

	windows, err := s.windowsOn(ctx, request.PractitionerID, day)
	if err != nil {
		return err
	}

	covered := false
	for _, w := range windows {
		if w.on(day).contains(proposed) {
			covered = true
			break
		}
	}
	if !covered {
		reason := describeUnavailability(windows, proposed)
		return exceptions.ErrNoAvailability(nil, reason, fmt.Sprintf("practitioner %s: %s", request.PractitionerID, reason))
	}

	existing, err := s.AppointmentRepository.FindActiveAt(ctx, request.PractitionerID, request.ProposedStart)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrSlotTaken(nil, request.PractitionerID, proposed.Format(time.RFC3339))
	}
	return nil
}

func (s *availabilityScheduler) ValidateWindow(ctx context.Context, window *models.AvailabilityWindow, excludeID string) error {
	if window.DayOfWeek < 0 || window.DayOfWeek > 6 {
		return exceptions.ErrInvalidWindow(nil, fmt.Sprintf("day of week %d out of range", window.DayOfWeek))
	}
	candidate, err := toDayWindow(window)
	if err != nil {
		return exceptions.ErrInvalidWindow(err, err.Error())
	}
	if !validWindow(candidate) {
		return exceptions.ErrInvalidWindow(nil, fmt.Sprintf("start %s must be before end %s", candidate.Start, candidate.End))
	}
	if window.EffectiveFrom != nil && window.EffectiveTo != nil && window.EffectiveTo.Before(*window.EffectiveFrom) {
		return exceptions.ErrInvalidWindow(nil, "effective range ends before it starts")
	}

	// Inactive windows never produce slots, so they cannot conflict.
	if !window.IsActive {
		return nil
	}

	existing, err := s.AvailabilityRepository.ListActiveByDay(ctx, window.PractitionerID, window.DayOfWeek)
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		other, err := toDayWindow(&existing[i])
		if err != nil {
			s.Log.Warn("availabilityScheduler.ValidateWindow skipping unparsable window",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingWindowIDKey, existing[i].ID),
				zap.Error(err),
			)
			continue
		}
		if overlaps(candidate, other) {
			return exceptions.ErrScheduleConflict(nil, other.ID, other.String())
		}
	}
	return nil
}

// windowsOn returns the parsed active windows of practitionerID that apply on day.
func (s *availabilityScheduler) windowsOn(ctx context.Context, practitionerID string, day time.Time) ([]dayWindow, error) {
	stored, err := s.AvailabilityRepository.ListActiveByDay(ctx, practitionerID, int(day.Weekday()))
	if err != nil {
		s.Log.Error("availabilityScheduler.windowsOn error listing windows",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.Error(err),
		)
		return nil, err
	}

	windows := make([]dayWindow, 0, len(stored))
	for i := range stored {
		if !stored[i].IsActive || !stored[i].EffectiveOn(day) {
			continue
		}
		w, err := toDayWindow(&stored[i])
		if err != nil || !validWindow(w) {
			s.Log.Warn("availabilityScheduler.windowsOn skipping invalid window",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingWindowIDKey, stored[i].ID),
			)
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}
