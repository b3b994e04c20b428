package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"telecare-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter stored in Redis with a TTL equal
// to the window duration.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the entity being counted, e.g. a client IP.
	ResourceName string
	// LimiterGroupName namespaces the key, e.g. security:invalid_credential.
	LimiterGroupName string
	WindowDuration   time.Duration
	MaxQuota         int
	// NowUTC is optional; zero means time.Now().UTC().
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	Count          int64
	RetryAfterSecs int
}

// ApplyResourceLimiter counts one hit for the resource and reports whether the
// window quota is still respected.
func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &ApplyResourceLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.TrimSpace(in.LimiterGroupName)
	window := in.WindowDuration
	if window <= 0 {
		window = time.Minute
	}
	windowSec := int64(window / time.Second)
	if windowSec <= 0 {
		windowSec = 1
	}

	if resource == "" || group == "" {
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: int(windowSec)}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &ApplyResourceLimiterOutput{Allowed: false}, err
	}

	out := &ApplyResourceLimiterOutput{Allowed: true, Count: newCount}
	if in.MaxQuota > 0 && newCount > int64(in.MaxQuota) {
		nextWindowStart := (windowID + 1) * windowSec
		out.Allowed = false
		out.RetryAfterSecs = int(nextWindowStart-now.Unix()) + 1
	}
	return out, nil
}
