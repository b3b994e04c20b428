package requests

type UpsertAvailabilityWindow struct {
	DayOfWeek     *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime     string `json:"start_time" validate:"required,clock"`
	EndTime       string `json:"end_time" validate:"required,clock"`
	IsActive      *bool  `json:"is_active"`
	EffectiveFrom string `json:"effective_from" validate:"omitempty,datetime=2006-01-02"`
	EffectiveTo   string `json:"effective_to" validate:"omitempty,datetime=2006-01-02"`
}
