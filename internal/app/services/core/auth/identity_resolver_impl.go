package auth

import (
	"errors"
	"net/http"
	"strings"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/services/shared/jwtmanager"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type identityResolver struct {
	Codec      contracts.TokenCodec
	Tracker    contracts.CredentialFailureTracker
	CookieName string
	Log        *zap.Logger
}

// NewIdentityResolver builds a resolver reading the bearer header first and the
// cookieName cookie second. tracker may be nil.
func NewIdentityResolver(codec contracts.TokenCodec, tracker contracts.CredentialFailureTracker, cookieName string, logger *zap.Logger) contracts.IdentityResolver {
	return &identityResolver{
		Codec:      codec,
		Tracker:    tracker,
		CookieName: cookieName,
		Log:        logger,
	}
}

// Resolve fails with a 401 CustomError when the request carries no credential
// and with a 403 CustomError when the credential does not verify.
func (r *identityResolver) Resolve(req *http.Request) (*models.Principal, error) {
	token, source, found := r.extractToken(req)
	if !found {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	principal, err := r.Codec.Verify(token)
	if err != nil {
		r.recordInvalidCredential(req, source, err)
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	return principal, nil
}

func (r *identityResolver) extractToken(req *http.Request) (token, source string, found bool) {
	if header := req.Header.Get(constvars.HeaderAuthorization); header != "" {
		scheme, value, _ := strings.Cut(header, " ")
		if strings.EqualFold(scheme, constvars.AuthorizationBearerScheme) {
			return strings.TrimSpace(value), "header", true
		}
	}

	if r.CookieName != "" {
		if cookie, err := req.Cookie(r.CookieName); err == nil && cookie.Value != "" {
			return cookie.Value, "cookie", true
		}
	}
	return "", "", false
}

func (r *identityResolver) recordInvalidCredential(req *http.Request, source string, cause error) {
	ctx := req.Context()
	requestID := utils.GetRequestID(ctx)
	clientIP := utils.ClientIP(req)

	utils.LogSecurityEvent(r.Log, constvars.SecurityEventInvalidCredential, requestID, constvars.SecuritySeverityLow,
		zap.String("reason", invalidCredentialReason(cause)),
		zap.String("credential_source", source),
		zap.String(constvars.LoggingRemoteAddrKey, clientIP),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)

	if r.Tracker == nil {
		return
	}
	if _, err := r.Tracker.RecordFailure(ctx, clientIP); err != nil {
		r.Log.Warn("identityResolver.recordInvalidCredential tracker failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func invalidCredentialReason(err error) string {
	switch {
	case errors.Is(err, jwtmanager.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwtmanager.ErrTokenSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, jwtmanager.ErrTokenMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
