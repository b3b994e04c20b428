package ratelimiter

import (
	"context"
	"testing"
	"time"

	redisrepo "telecare-service/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResourceLimiter_ApplyResourceLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := NewResourceLimiter(redisrepo.NewRedisRepository(client), zap.NewNop())
	ctx := context.Background()
	now := time.Date(2025, 1, 6, 9, 0, 10, 0, time.UTC)

	in := &ApplyResourceLimiterInput{
		ResourceName:     "10.0.0.1",
		LimiterGroupName: "security:invalid_credential",
		WindowDuration:   time.Minute,
		MaxQuota:         2,
		NowUTC:           now,
	}

	for i := 1; i <= 2; i++ {
		out, err := limiter.ApplyResourceLimiter(ctx, in)
		require.NoError(t, err)
		assert.True(t, out.Allowed, "hit %d should be allowed", i)
		assert.Equal(t, int64(i), out.Count)
	}

	out, err := limiter.ApplyResourceLimiter(ctx, in)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, int64(3), out.Count)
	assert.Equal(t, 51, out.RetryAfterSecs)

	t.Run("next window starts from zero", func(t *testing.T) {
		next := *in
		next.NowUTC = now.Add(time.Minute)
		out, err := limiter.ApplyResourceLimiter(ctx, &next)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
		assert.Equal(t, int64(1), out.Count)
	})

	t.Run("blank resource is refused", func(t *testing.T) {
		blank := *in
		blank.ResourceName = "  "
		out, err := limiter.ApplyResourceLimiter(ctx, &blank)
		require.NoError(t, err)
		assert.False(t, out.Allowed)
	})
}
