package middlewares

import (
	"net/http"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit bounds every client IP to App.MaxRequests per App.MaxTimeRequestsPerSeconds.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil, utils.ClientIP(r)))
		}),
	)
}

// LoginThrottle builds the per-IP limiter with temporary block used on the login route.
func (m *Middlewares) LoginThrottle() func(next http.Handler) http.Handler {
	security := m.InternalConfig.Security
	blockTime := time.Duration(security.LoginBlockTimeInMinutes) * time.Minute
	limiter := NewRateLimiter(security.LoginMaxAttempts, blockTime, blockTime, m.Log)
	return limiter.Limit
}
