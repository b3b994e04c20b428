package constvars

const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-Id"
	HeaderRetryAfter    = "Retry-After"
	HeaderXForwardedFor = "X-Forwarded-For"
)

const (
	AuthorizationBearerScheme = "Bearer"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPageSize        = 10
	MaxPageSize            = 100
)

const (
	QueryParamPage     = "page"
	QueryParamPageSize = "page_size"
	QueryParamDate     = "date"
	QueryParamRole     = "role"
	QueryParamStatus   = "status"
)

const (
	URLParamUserID         = "userId"
	URLParamPractitionerID = "practitionerId"
	URLParamWindowID       = "windowId"
	URLParamAppointmentID  = "appointmentId"
)
