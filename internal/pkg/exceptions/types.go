package exceptions

import (
	"fmt"
	"strings"
	"telecare-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed+": "+FormatAllValidationErrors(err))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}
	ErrInvalidFormat = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidFormat, source), fmt.Sprintf(constvars.ErrDevInvalidFormat, source))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrUserNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevUserNotExists)
	}
	ErrTooManyRequests = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, key))
	}
)

// Session and access errors
var (
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientInvalidSession, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenSigning = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningFailed)
	}
	ErrUnauthenticated = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevUnauthenticated)
	}
	ErrForbiddenRole = func(err error, role constvars.RoleName, allowed []constvars.RoleName) *CustomError {
		names := joinRoles(allowed)
		return BuildNewCustomError(err, constvars.StatusForbidden, fmt.Sprintf(constvars.ErrClientRoleNotAllowed, role, names), fmt.Sprintf(constvars.ErrDevRoleNotAllowed, role, names))
	}
	ErrForbiddenRank = func(err error, role constvars.RoleName, rank int, required constvars.RoleName, requiredRank int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, fmt.Sprintf(constvars.ErrClientRankInsufficient, role, required), fmt.Sprintf(constvars.ErrDevRankInsufficient, role, rank, required, requiredRank))
	}
	ErrForbiddenOwnership = func(err error, role constvars.RoleName, subjectID, ownerID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, fmt.Sprintf(constvars.ErrClientOwnershipRequired, role, joinRoles(constvars.ElevatedRoles)), fmt.Sprintf(constvars.ErrDevOwnershipRequired, subjectID, ownerID))
	}
	ErrForbiddenPermission = func(err error, role constvars.RoleName, permission string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, fmt.Sprintf(constvars.ErrClientPermissionNotGranted, role, permission), fmt.Sprintf(constvars.ErrDevPermissionNotGranted, role, permission))
	}
)

// Scheduling errors
var (
	// ErrNoAvailability carries a client facing reason and an internal detail.
	ErrNoAvailability = func(err error, reason, detail string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientNoAvailability, reason), fmt.Sprintf(constvars.ErrDevNoAvailability, detail))
	}
	ErrSlotTaken = func(err error, practitionerID, slot string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientSlotTaken, slot), fmt.Sprintf(constvars.ErrDevSlotTaken, slot, practitionerID))
	}
	ErrScheduleConflict = func(err error, windowID, bounds string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientScheduleConflict, bounds), fmt.Sprintf(constvars.ErrDevScheduleConflict, windowID+" ("+bounds+")"))
	}
	ErrScheduleLocked = func(err error, practitionerID string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScheduleBusy, fmt.Sprintf(constvars.ErrDevScheduleLocked, practitionerID))
		customErr.Retryable = true
		return customErr
	}
	ErrInvalidWindow = func(err error, detail string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidWindow, detail), fmt.Sprintf(constvars.ErrDevInvalidWindow, detail))
	}
	ErrInvalidStatusTransition = func(err error, from, to constvars.AppointmentStatus) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientInvalidStatusTransition, fmt.Sprintf(constvars.ErrDevInvalidStatusTransition, from, to))
	}
	ErrAppointmentNotFound = func(err error, appointmentID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevAppointmentNotFound, appointmentID))
	}
	ErrWindowNotFound = func(err error, windowID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevWindowNotFound, windowID))
	}
)

// Infrastructure errors
var (
	ErrMongoFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFindDocument)
	}
	ErrMongoInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoInsertDocument)
	}
	ErrMongoUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoUpdateDocument)
	}
	ErrMongoDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDeleteDocument)
	}
	ErrMongoDecodeDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDecodeDocument)
	}
	ErrMongoCreateIndex = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoCreateIndex)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisIncr = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncr)
	}
	ErrRedisLock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientScheduleBusy, constvars.ErrDevRedisLock)
	}
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublish)
	}
)

func joinRoles(roles []constvars.RoleName) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
