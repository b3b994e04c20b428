package auth

import (
	"context"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/services/shared/ratelimiter"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// credentialFailureTracker counts invalid credentials per source in a fixed
// window and raises a high severity event once the threshold is reached.
type credentialFailureTracker struct {
	Limiter   *ratelimiter.ResourceLimiter
	Threshold int
	Window    time.Duration
	Log       *zap.Logger
	now       func() time.Time
}

func NewCredentialFailureTracker(limiter *ratelimiter.ResourceLimiter, threshold int, window time.Duration, logger *zap.Logger) contracts.CredentialFailureTracker {
	return &credentialFailureTracker{
		Limiter:   limiter,
		Threshold: threshold,
		Window:    window,
		Log:       logger,
		now:       time.Now,
	}
}

func (t *credentialFailureTracker) RecordFailure(ctx context.Context, source string) (int64, error) {
	out, err := t.Limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:     source,
		LimiterGroupName: constvars.RedisKeyInvalidCredentialPrefix + "ip",
		WindowDuration:   t.Window,
		MaxQuota:         t.Threshold,
		NowUTC:           t.now().UTC(),
	})
	if err != nil {
		return 0, err
	}

	if t.Threshold > 0 && out.Count == int64(t.Threshold) {
		utils.LogSecurityEvent(t.Log, constvars.SecurityEventRepeatedInvalidCredential, utils.GetRequestID(ctx), constvars.SecuritySeverityHigh,
			zap.String(constvars.LoggingRemoteAddrKey, source),
			zap.Int64(constvars.LoggingFailureCountKey, out.Count),
			zap.Duration("window", t.Window),
		)
	}
	return out.Count, nil
}
