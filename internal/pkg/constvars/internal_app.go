package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
)

const (
	REQUEST_ID_PREFIX = "TLCR_SVC_"
)

// RoleName is the closed set of roles a principal can hold.
type RoleName string

const (
	RoleSuperadmin RoleName = "SUPERADMIN"
	RoleAdmin      RoleName = "ADMIN"
	RoleDoctor     RoleName = "DOCTOR"
	RolePatient    RoleName = "PATIENT"
	RolePharmacy   RoleName = "PHARMACY"
	RoleSupport    RoleName = "SUPPORT"
)

// AllRoles lists every role in descending rank order.
var AllRoles = []RoleName{
	RoleSuperadmin,
	RoleAdmin,
	RoleDoctor,
	RolePatient,
	RolePharmacy,
	RoleSupport,
}

// ElevatedRoles may act on resources owned by other subjects.
var ElevatedRoles = []RoleName{RoleAdmin, RoleSuperadmin}

func (r RoleName) IsValid() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleDoctor, RolePatient, RolePharmacy, RoleSupport:
		return true
	}
	return false
}

func (r RoleName) String() string {
	return string(r)
}

type AccountType string

const (
	AccountTypeUser  AccountType = "USER"
	AccountTypeAdmin AccountType = "ADMIN"
)

func (a AccountType) IsValid() bool {
	return a == AccountTypeUser || a == AccountTypeAdmin
}

const (
	MongoCollectionUsers               = "users"
	MongoCollectionAvailabilityWindows = "availability_windows"
	MongoCollectionAppointments        = "appointments"
)

const (
	RedisKeyInvalidCredentialPrefix = "security:invalid_credential:"
	RedisKeyScheduleLockPrefix      = "schedule:lock:"
)

const (
	// SlotGranularityInMinutes is the fixed step used when enumerating open slots.
	SlotGranularityInMinutes  = 30
	DefaultAppointmentMinutes = 30
)

const (
	LayoutClock = "15:04"
	LayoutDate  = "2006-01-02"
)
