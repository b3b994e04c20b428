package models

import (
	"telecare-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	ID              string                      `bson:"_id,omitempty"`
	PractitionerID  string                      `bson:"practitionerId"`
	PatientID       string                      `bson:"patientId"`
	StartTime       time.Time                   `bson:"startTime"`
	DurationMinutes int                         `bson:"durationMinutes"`
	Status          constvars.AppointmentStatus `bson:"status"`
	Active          bool                        `bson:"active"`
	Reason          string                      `bson:"reason,omitempty"`
	CancelReason    string                      `bson:"cancelReason,omitempty"`
	TimeModel       `bson:",inline"`
}

// SetStatus keeps Active in step with Status so the partial unique index only
// covers appointments that still hold their slot.
func (a *Appointment) SetStatus(status constvars.AppointmentStatus) {
	a.Status = status
	a.Active = status.IsActive()
}

type BookingRequest struct {
	PractitionerID  string
	PatientID       string
	ProposedStart   time.Time
	DurationMinutes int
}

type AppointmentEvent struct {
	Event           string    `json:"event"`
	AppointmentID   string    `json:"appointment_id"`
	PractitionerID  string    `json:"practitioner_id"`
	PatientID       string    `json:"patient_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type BroadcastMessage struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	SenderRole  string    `json:"sender_role"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	TargetRoles []string  `json:"target_roles"`
	SentAt      time.Time `json:"sent_at"`
}
