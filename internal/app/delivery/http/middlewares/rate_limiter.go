package middlewares

import (
	"net/http"
	"strconv"
	"sync"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles a route per client IP with a token bucket. A client that
// empties its bucket is blocked outright for blockTime.
type RateLimiter struct {
	limiters  map[string]*visitor
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*visitor),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := utils.ClientIP(req)
		now := r.now()

		r.mu.Lock()
		r.sweep(now)
		if blockedUntil, found := r.blocked[ip]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, blockedUntil.Sub(now))
				return
			}
			delete(r.blocked, ip)
			delete(r.limiters, ip)
		}

		v, exists := r.limiters[ip]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(rate.Every(r.per), r.requests)}
			r.limiters[ip] = v
		}
		v.lastSeen = now

		if !v.limiter.AllowN(now, 1) {
			r.blocked[ip] = now.Add(r.blockTime)
			r.mu.Unlock()
			r.reject(w, req, ip, r.blockTime)
			return
		}
		r.mu.Unlock()

		next.ServeHTTP(w, req)
	})
}

// idleAfter is how long a bucket takes to refill completely. A visitor idle
// for longer is indistinguishable from a new one and can be dropped.
func (r *RateLimiter) idleAfter() time.Duration {
	return r.per * time.Duration(r.requests)
}

// sweep drops idle visitors and expired blocks at most once per idle period.
// Callers hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	idle := r.idleAfter()
	if now.Sub(r.lastSweep) < idle {
		return
	}
	r.lastSweep = now
	for ip, v := range r.limiters {
		if now.Sub(v.lastSeen) >= idle {
			delete(r.limiters, ip)
		}
	}
	for ip, until := range r.blocked {
		if !now.Before(until) {
			delete(r.blocked, ip)
		}
	}
}

// tracked reports how many client IPs currently hold limiter state.
func (r *RateLimiter) tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters) + len(r.blocked)
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, retryAfter time.Duration) {
	utils.LogSecurityEvent(r.log, constvars.SecurityEventLoginThrottled, utils.GetRequestID(req.Context()), constvars.SecuritySeverityLow,
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)
	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil, ip))
}
