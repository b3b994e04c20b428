package middlewares

import (
	"net/http"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
)

// ResolveIdentity attaches the request principal when a credential is present.
// Requests without a credential continue anonymously so the route guards decide;
// a credential that fails verification is rejected here.
func (m *Middlewares) ResolveIdentity(next http.Handler) http.Handler {
	return m.resolveIdentity(next, true)
}

// OptionalIdentity is ResolveIdentity for the session entry points. A credential
// that fails verification is still logged and tracked, but the request goes on
// anonymously so a stale cookie never blocks login or logout.
func (m *Middlewares) OptionalIdentity(next http.Handler) http.Handler {
	return m.resolveIdentity(next, false)
}

func (m *Middlewares) resolveIdentity(next http.Handler, rejectInvalid bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.IdentityResolver.Resolve(r)
		if err != nil {
			if !rejectInvalid || exceptions.StatusCodeOf(err) == constvars.StatusUnauthorized {
				next.ServeHTTP(w, r)
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := utils.ContextWithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
