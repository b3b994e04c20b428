package config

import (
	"telecare-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		cfg := NewInternalConfig()

		assert.Equal(t, 24*time.Hour, cfg.JWT.TTL())
		assert.Equal(t, "accessToken", cfg.JWT.AccessTokenCookieName)
		assert.Equal(t, 30*time.Second, cfg.Scheduling.LockTTL())
		assert.Greater(t, cfg.Scheduling.LockTTL(), constvars.UsecaseTimeout)
		assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret, "empty secret must fail fast")
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXP_TIME_IN_HOUR", "2")
		t.Setenv("SECURITY_INVALID_CREDENTIAL_THRESHOLD", "3")
		cfg := NewInternalConfig()

		assert.NoError(t, cfg.Validate())
		assert.Equal(t, 2*time.Hour, cfg.JWT.TTL())
		assert.Equal(t, 3, cfg.Security.InvalidCredentialThreshold)
	})

	t.Run("lock ttl not above the usecase timeout is rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("SCHEDULE_LOCK_TTL_IN_SECONDS", "10")
		cfg := NewInternalConfig()

		assert.ErrorIs(t, cfg.Validate(), ErrLockTTLTooShort)
	})
}
