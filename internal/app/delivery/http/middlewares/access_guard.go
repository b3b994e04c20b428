package middlewares

import (
	"net/http"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (m *Middlewares) RequireAuthenticated(next http.Handler) http.Handler {
	return m.guard(next, func(r *http.Request, principal *models.Principal) error {
		return m.Guard.RequireAuthenticated(principal)
	})
}

func (m *Middlewares) RequireAnyRole(allowed ...constvars.RoleName) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.guard(next, func(r *http.Request, principal *models.Principal) error {
			return m.Guard.RequireAnyRole(principal, allowed...)
		})
	}
}

func (m *Middlewares) RequireMinRank(minimum constvars.RoleName) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.guard(next, func(r *http.Request, principal *models.Principal) error {
			return m.Guard.RequireMinRank(principal, minimum)
		})
	}
}

// RequireOwnerOrElevated compares the principal with the owner named by the
// urlParam route parameter.
func (m *Middlewares) RequireOwnerOrElevated(urlParam string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.guard(next, func(r *http.Request, principal *models.Principal) error {
			return m.Guard.RequireOwnerOrElevated(principal, chi.URLParam(r, urlParam))
		})
	}
}

func (m *Middlewares) RequirePermission(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.guard(next, func(r *http.Request, principal *models.Principal) error {
			return m.Guard.RequirePermission(principal, name)
		})
	}
}

func (m *Middlewares) guard(next http.Handler, check func(r *http.Request, principal *models.Principal) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ := utils.PrincipalFromContext(r.Context())
		if err := check(r, principal); err != nil {
			if exceptions.StatusCodeOf(err) == constvars.StatusForbidden {
				utils.LogSecurityEvent(m.Log, constvars.SecurityEventAccessDenied, utils.GetRequestID(r.Context()), constvars.SecuritySeverityLow,
					zap.String(constvars.LoggingSubjectIDKey, principal.SubjectID),
					zap.String(constvars.LoggingRoleKey, principal.Role.String()),
					zap.String(constvars.LoggingMethodKey, r.Method),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
