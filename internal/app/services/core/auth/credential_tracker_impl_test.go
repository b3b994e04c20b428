package auth

import (
	"context"
	"testing"
	"time"

	"telecare-service/internal/app/services/shared/ratelimiter"
	redisrepo "telecare-service/internal/app/services/shared/redis"
	"telecare-service/internal/pkg/constvars"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCredentialFailureTracker_RecordFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)
	limiter := ratelimiter.NewResourceLimiter(redisrepo.NewRedisRepository(client), logger)

	tracker := NewCredentialFailureTracker(limiter, 3, 15*time.Minute, logger).(*credentialFailureTracker)
	fixed := time.Date(2025, 1, 6, 9, 1, 0, 0, time.UTC)
	tracker.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := int64(1); i <= 4; i++ {
		count, err := tracker.RecordFailure(ctx, "198.51.100.7")
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	other, err := tracker.RecordFailure(ctx, "198.51.100.8")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other, "counters are kept per source")

	repeated := logs.FilterField(zap.String("security_event", constvars.SecurityEventRepeatedInvalidCredential))
	require.Equal(t, 1, repeated.Len(), "threshold event fires once per window")
	assert.Equal(t, constvars.SecuritySeverityHigh, repeated.All()[0].ContextMap()["severity"])
}
