package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/services/core/auth"
	"telecare-service/internal/app/services/core/roles"
	"telecare-service/internal/app/services/shared/jwtmanager"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	codec       *jwtmanager.JWTManager
	middlewares *Middlewares
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	codec, err := jwtmanager.NewJWTManager("middleware-secret", time.Hour, logger)
	require.NoError(t, err)

	hierarchy := roles.NewHierarchy(roles.DefaultRanks())
	guard := roles.NewAccessGuard(hierarchy, roles.NewPermissionMatrix(roles.DefaultGrants()))
	internalConfig := &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1, MaxRequests: 100, MaxTimeRequestsPerSeconds: 1},
		JWT: config.AppJWT{AccessTokenCookieName: "accessToken"},
		Security: config.AppSecurity{
			LoginMaxAttempts:        2,
			LoginBlockTimeInMinutes: 15,
		},
	}

	resolver := auth.NewIdentityResolver(codec, nil, internalConfig.JWT.AccessTokenCookieName, logger)
	return &testEnv{
		codec:       codec,
		middlewares: NewMiddlewares(logger, resolver, guard, internalConfig),
	}
}

func (e *testEnv) bearer(t *testing.T, subjectID string, role constvars.RoleName) string {
	t.Helper()
	token, err := e.codec.Issue(subjectID, role, constvars.AccountTypeUser)
	require.NoError(t, err)
	return constvars.AuthorizationBearerScheme + " " + token.Token
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	principal, found := utils.PrincipalFromContext(r.Context())
	if found {
		w.Header().Set("X-Subject", principal.SubjectID)
	}
	w.WriteHeader(http.StatusOK)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) responses.ErrorResponseDTO {
	t.Helper()
	var body responses.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestResolveIdentity(t *testing.T) {
	env := newTestEnv(t)
	handler := env.middlewares.ResolveIdentity(http.HandlerFunc(okHandler))

	t.Run("valid bearer attaches the principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, env.bearer(t, "pat-1", constvars.RolePatient))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pat-1", rr.Header().Get("X-Subject"))
	})

	t.Run("no credential continues anonymously", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/auth/login", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("X-Subject"))
	})

	t.Run("invalid credential is rejected with 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "not-a-token"})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		body := decodeError(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientInvalidSession, body.Message)
	})
}

func TestAccessGuardMiddlewares(t *testing.T) {
	env := newTestEnv(t)
	m := env.middlewares

	router := chi.NewRouter()
	router.Use(m.ResolveIdentity)
	router.With(m.RequireAuthenticated).Get("/me", okHandler)
	router.With(m.RequireAuthenticated, m.RequireAnyRole(constvars.RoleDoctor, constvars.RoleAdmin)).Get("/doctors-only", okHandler)
	router.With(m.RequireAuthenticated, m.RequireMinRank(constvars.RoleAdmin)).Get("/admin", okHandler)
	router.With(m.RequireAuthenticated, m.RequireOwnerOrElevated(constvars.URLParamUserID)).Get("/users/{userId}", okHandler)
	router.With(m.RequireAuthenticated, m.RequirePermission(roles.PermissionViewAllUsers)).Get("/users", okHandler)

	tests := []struct {
		name    string
		path    string
		subject string
		role    constvars.RoleName
		want    int
	}{
		{"anonymous is unauthenticated", "/me", "", "", http.StatusUnauthorized},
		{"authenticated passes", "/me", "pat-1", constvars.RolePatient, http.StatusOK},
		{"role in allowed set", "/doctors-only", "doc-1", constvars.RoleDoctor, http.StatusOK},
		{"role outside allowed set", "/doctors-only", "pat-1", constvars.RolePatient, http.StatusForbidden},
		{"superadmin not listed is still rejected", "/doctors-only", "root", constvars.RoleSuperadmin, http.StatusForbidden},
		{"rank above minimum", "/admin", "root", constvars.RoleSuperadmin, http.StatusOK},
		{"rank below minimum", "/admin", "doc-1", constvars.RoleDoctor, http.StatusForbidden},
		{"owner reads own record", "/users/pat-1", "pat-1", constvars.RolePatient, http.StatusOK},
		{"non owner is rejected", "/users/pat-2", "pat-1", constvars.RolePatient, http.StatusForbidden},
		{"elevated reads any record", "/users/pat-2", "adm-1", constvars.RoleAdmin, http.StatusOK},
		{"support is not elevated", "/users/pat-2", "sup-1", constvars.RoleSupport, http.StatusForbidden},
		{"permission granted", "/users", "adm-1", constvars.RoleAdmin, http.StatusOK},
		{"permission missing", "/users", "doc-1", constvars.RoleDoctor, http.StatusForbidden},
		{"anonymous permission check", "/users", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.subject != "" {
				req.Header.Set(constvars.HeaderAuthorization, env.bearer(t, tt.subject, tt.role))
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}

	t.Run("forbidden message names the role and allowed set in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		req := httptest.NewRequest(http.MethodGet, "/doctors-only", nil)
		req.Header.Set(constvars.HeaderAuthorization, env.bearer(t, "pat-1", constvars.RolePatient))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusForbidden, rr.Code)
		body := decodeError(t, rr)
		assert.Empty(t, body.DevMessage)
		assert.Contains(t, body.Message, "PATIENT")
		assert.Contains(t, body.Message, "DOCTOR, ADMIN")
	})

	t.Run("ownership failure keeps subject ids out of the client message", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		req := httptest.NewRequest(http.MethodGet, "/users/pat-2", nil)
		req.Header.Set(constvars.HeaderAuthorization, env.bearer(t, "pat-1", constvars.RolePatient))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusForbidden, rr.Code)
		body := decodeError(t, rr)
		assert.Contains(t, body.Message, "PATIENT")
		assert.Contains(t, body.Message, "ADMIN, SUPERADMIN")
		assert.NotContains(t, body.Message, "pat-1")
	})
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, 15*time.Minute, zap.NewNop())
	now := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(http.HandlerFunc(okHandler))

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.9:1111").Code)
	assert.Equal(t, http.StatusOK, send("203.0.113.9:2222").Code)

	blocked := send("203.0.113.9:3333")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "900", blocked.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, send("198.51.100.1:1111").Code, "other clients are unaffected")

	now = now.Add(10 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9:4444").Code, "still blocked")

	now = now.Add(6 * time.Minute)
	assert.Equal(t, http.StatusOK, send("203.0.113.9:5555").Code, "block expired")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, 15*time.Minute, zap.NewNop())
	now := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(http.HandlerFunc(okHandler))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 1; i <= 50; i++ {
		send(fmt.Sprintf("198.51.100.%d:1111", i))
	}
	send("203.0.113.9:1111")
	send("203.0.113.9:1111")
	require.Equal(t, http.StatusTooManyRequests, send("203.0.113.9:1111"))
	assert.Equal(t, 52, limiter.tracked(), "50 buckets plus the blocked client's bucket and block")

	now = now.Add(time.Minute)
	send("192.0.2.1:1111")
	assert.Equal(t, 53, limiter.tracked(), "nothing is idle long enough yet")

	now = now.Add(20 * time.Minute)
	assert.Equal(t, http.StatusOK, send("192.0.2.2:1111"))
	assert.Equal(t, 1, limiter.tracked(), "only the client seen in this period remains")
}

func TestRequestIDAndErrorHandler(t *testing.T) {
	env := newTestEnv(t)
	m := env.middlewares

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := m.RequestIDMiddleware(m.ErrorHandler(panicking))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, decodeError(t, rr).Message)

	rr = httptest.NewRecorder()
	m.RequestIDMiddleware(http.HandlerFunc(okHandler)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rr.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
}
