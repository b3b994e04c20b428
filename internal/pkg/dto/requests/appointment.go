package requests

type BookAppointment struct {
	PractitionerID  string `json:"practitioner_id" validate:"required"`
	PatientID       string `json:"patient_id"`
	StartTime       string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gte=30,lte=240"`
	Reason          string `json:"reason" validate:"max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED COMPLETED"`
}

type CancelAppointment struct {
	Reason string `json:"reason" validate:"max=500"`
}
