package constvars

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusApproved  AppointmentStatus = "APPROVED"
	AppointmentStatusRejected  AppointmentStatus = "REJECTED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// IsActive reports whether an appointment in this status still holds its slot.
func (s AppointmentStatus) IsActive() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusApproved
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending,
		AppointmentStatusApproved,
		AppointmentStatusRejected,
		AppointmentStatusCancelled,
		AppointmentStatusCompleted:
		return true
	}
	return false
}

// ActiveAppointmentStatuses are the statuses that block a slot for other bookings.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusApproved,
}

// AppointmentStatusTransitions lists the allowed next statuses per current status.
var AppointmentStatusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending: {
		AppointmentStatusApproved,
		AppointmentStatusRejected,
		AppointmentStatusCancelled,
	},
	AppointmentStatusApproved: {
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
	},
}
