package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess     = "successfully login"
	LogoutSuccess    = "successfully logout"
	GetMeSuccess     = "get current session successfully"
	GetUserSuccess   = "get user successfully"
	ListUsersSuccess = "list users successfully"

	// Schedule messages
	ListAvailabilitySuccess   = "list availability windows successfully"
	CreateAvailabilitySuccess = "availability window created successfully"
	UpdateAvailabilitySuccess = "availability window updated successfully"
	DeleteAvailabilitySuccess = "availability window deleted successfully"
	ListSlotsSuccess          = "list available slots successfully"

	// Appointment messages
	BookAppointmentSuccess         = "appointment booked successfully"
	CancelAppointmentSuccess       = "appointment cancelled successfully"
	UpdateAppointmentStatusSuccess = "appointment status updated successfully"
	ListAppointmentsSuccess        = "list appointments successfully"

	// Broadcast messages
	BroadcastSentSuccess = "broadcast sent successfully"
)
