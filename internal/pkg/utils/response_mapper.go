package utils

import (
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
)

func ToUserResponse(user *models.User) responses.User {
	return responses.User{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		AccountType: string(user.AccountTypeOrDefault()),
		IsActive:    user.IsActive,
	}
}

func ToAvailabilityWindowResponse(window *models.AvailabilityWindow) responses.AvailabilityWindow {
	response := responses.AvailabilityWindow{
		ID:             window.ID,
		PractitionerID: window.PractitionerID,
		DayOfWeek:      window.DayOfWeek,
		StartTime:      window.StartTime,
		EndTime:        window.EndTime,
		IsActive:       window.IsActive,
	}
	if window.EffectiveFrom != nil {
		response.EffectiveFrom = window.EffectiveFrom.Format(constvars.LayoutDate)
	}
	if window.EffectiveTo != nil {
		response.EffectiveTo = window.EffectiveTo.Format(constvars.LayoutDate)
	}
	return response
}

func ToAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:              appointment.ID,
		PractitionerID:  appointment.PractitionerID,
		PatientID:       appointment.PatientID,
		StartTime:       appointment.StartTime,
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}
