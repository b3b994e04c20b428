package responses

type AvailabilityWindow struct {
	ID             string `json:"id"`
	PractitionerID string `json:"practitioner_id"`
	DayOfWeek      int    `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	IsActive       bool   `json:"is_active"`
	EffectiveFrom  string `json:"effective_from,omitempty"`
	EffectiveTo    string `json:"effective_to,omitempty"`
}

type AvailableSlot struct {
	Time     string `json:"time"`
	Datetime string `json:"datetime"`
}
