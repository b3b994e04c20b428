package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingErrorCodeKey          = "error_code"
	LoggingErrorMessageKey       = "error_message"
	LoggingSubjectIDKey          = "subject_id"
	LoggingRoleKey               = "role"
	LoggingPractitionerIDKey     = "practitioner_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingWindowIDKey           = "window_id"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueKey              = "queue"
	LoggingFailureCountKey       = "failure_count"
)

const (
	SecuritySeverityLow  = "low"
	SecuritySeverityHigh = "high"
)

const (
	SecurityEventInvalidCredential         = "invalid_credential"
	SecurityEventRepeatedInvalidCredential = "repeated_invalid_credential"
	SecurityEventAccessDenied              = "access_denied"
	SecurityEventLoginFailed               = "login_failed"
	SecurityEventLoginThrottled            = "login_throttled"
)

const (
	BusinessEventAppointmentBooked        = "appointment_booked"
	BusinessEventAppointmentStatusChanged = "appointment_status_changed"
	BusinessEventWindowCreated            = "availability_window_created"
	BusinessEventWindowUpdated            = "availability_window_updated"
	BusinessEventWindowDeleted            = "availability_window_deleted"
	BusinessEventBroadcastSent            = "broadcast_sent"
)

// Operations timed through utils.LogOperation
const (
	OperationCreateAppointment = "appointment.create"
)
