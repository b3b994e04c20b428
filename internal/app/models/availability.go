package models

import "time"

// AvailabilityWindow is a recurring weekly block during which a practitioner
// accepts bookings. StartTime and EndTime are HH:MM wall clock values.
type AvailabilityWindow struct {
	ID             string     `bson:"_id,omitempty"`
	PractitionerID string     `bson:"practitionerId"`
	DayOfWeek      int        `bson:"dayOfWeek"`
	StartTime      string     `bson:"startTime"`
	EndTime        string     `bson:"endTime"`
	IsActive       bool       `bson:"isActive"`
	EffectiveFrom  *time.Time `bson:"effectiveFrom,omitempty"`
	EffectiveTo    *time.Time `bson:"effectiveTo,omitempty"`
	TimeModel      `bson:",inline"`
}

// EffectiveOn reports whether the window's effective range contains date.
// Unset bounds are open in their direction.
func (w *AvailabilityWindow) EffectiveOn(date time.Time) bool {
	day := dateOnly(date)
	if w.EffectiveFrom != nil && day.Before(dateOnly(w.EffectiveFrom.In(date.Location()))) {
		return false
	}
	if w.EffectiveTo != nil && day.After(dateOnly(w.EffectiveTo.In(date.Location()))) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

type AvailableSlot struct {
	Time     string
	Datetime time.Time
}
