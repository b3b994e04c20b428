package responses

import "time"

type Appointment struct {
	ID              string    `json:"id"`
	PractitionerID  string    `json:"practitioner_id"`
	PatientID       string    `json:"patient_id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Broadcast struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	TargetRoles []string  `json:"target_roles"`
	SentAt      time.Time `json:"sent_at"`
}
