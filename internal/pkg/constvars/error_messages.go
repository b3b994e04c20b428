package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"alphanum":  "must contain only alphanumeric characters",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lt":        "must be less than %s",
	"lte":       "must be less than or equal to %s",
	"uuid":      "must be a valid UUID",
	"clock":     "must be a time in HH:MM format",
	"role_name": "must be one of SUPERADMIN, ADMIN, DOCTOR, PATIENT, PHARMACY, SUPPORT",
	"datetime":  "must be a valid datetime",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidSession                = "your session is invalid or has expired, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientResourceNotFound              = "the requested resource could not be found"
	ErrClientRoleNotAllowed                = "your role %s can't access this feature, allowed roles: %s"
	ErrClientRankInsufficient              = "your role %s can't access this feature, it requires %s or higher"
	ErrClientOwnershipRequired             = "your role %s can only access your own resources, other owners' resources need one of: %s"
	ErrClientPermissionNotGranted          = "your role %s does not have the %s permission"
	ErrClientNoAvailability                = "the practitioner is not available at the requested time: %s"
	ErrClientSlotTaken                     = "the requested slot %s has already been booked"
	ErrClientScheduleConflict              = "the availability window overlaps the existing window %s"
	ErrClientScheduleBusy                  = "the schedule is being updated, please retry shortly"
	ErrClientInvalidWindow                 = "the availability window is invalid: %s"
	ErrClientInvalidFormat                 = "%s has an invalid format"
	ErrClientInvalidStatusTransition       = "the appointment cannot move to the requested status"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime            = "cannot parse time into the given format"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevInvalidFormat              = "invalid %s format"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevInvalidCredentials         = "invalid credentials"

	// Session
	ErrDevAuthTokenMissing          = "authentication token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authentication token is invalid or expired"
	ErrDevAuthTokenExpired          = "authentication token has expired"
	ErrDevAuthTokenMalformed        = "authentication token is malformed"
	ErrDevAuthSignatureInvalid      = "authentication token signature is invalid"
	ErrDevAuthClaimsInvalid         = "authentication token carries invalid claims"
	ErrDevAuthSigningFailed         = "failed to sign authentication token"
	ErrDevAuthSecretMissing         = "token signing secret is not configured"
	ErrDevUnauthenticated           = "no authenticated principal in request context"

	// Authorization
	ErrDevRoleNotAllowed       = "role %s is not in the allowed set [%s]"
	ErrDevRankInsufficient     = "role %s rank %d is below required %s rank %d"
	ErrDevOwnershipRequired    = "subject %s may not act on resource owned by %s"
	ErrDevPermissionNotGranted = "role %s lacks permission %s"
	ErrDevPermissionMatrix     = "permission matrix is inconsistent: %s"

	// Scheduling
	ErrDevNoAvailability          = "no availability: %s"
	ErrDevSlotTaken               = "slot %s for practitioner %s is already taken"
	ErrDevScheduleConflict        = "window overlaps existing window %s"
	ErrDevScheduleLocked          = "schedule lock for practitioner %s is held"
	ErrDevInvalidWindow           = "invalid availability window: %s"
	ErrDevInvalidStatusTransition = "cannot transition appointment from %s to %s"
	ErrDevAppointmentNotFound     = "appointment %s not found"
	ErrDevWindowNotFound          = "availability window %s not found"
	ErrDevUserNotExists           = "user does not exist"

	// Rate limiting
	ErrDevTooManyRequests = "rate limit exceeded for %s"

	// Mongo
	ErrDevMongoFindDocument   = "failed to find document in mongo"
	ErrDevMongoInsertDocument = "failed to insert document into mongo"
	ErrDevMongoUpdateDocument = "failed to update document in mongo"
	ErrDevMongoDeleteDocument = "failed to delete document from mongo"
	ErrDevMongoDecodeDocument = "failed to decode mongo document"
	ErrDevMongoCreateIndex    = "failed to create mongo index"

	// Redis
	ErrDevRedisGet    = "failed to get key from redis"
	ErrDevRedisSet    = "failed to set key in redis"
	ErrDevRedisDelete = "failed to delete key from redis"
	ErrDevRedisIncr   = "failed to increment key in redis"
	ErrDevRedisLock   = "failed to acquire lock in redis"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq"
)
