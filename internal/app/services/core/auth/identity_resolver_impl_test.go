package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"telecare-service/internal/app/services/shared/jwtmanager"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCredentialFailureTracker struct {
	mock.Mock
}

func (m *MockCredentialFailureTracker) RecordFailure(ctx context.Context, source string) (int64, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(int64), args.Error(1)
}

func newResolverFixture(t *testing.T) (*jwtmanager.JWTManager, *MockCredentialFailureTracker, *identityResolver) {
	t.Helper()
	codec, err := jwtmanager.NewJWTManager("resolver-secret", time.Hour, zap.NewNop())
	require.NoError(t, err)
	tracker := new(MockCredentialFailureTracker)
	resolver := NewIdentityResolver(codec, tracker, "accessToken", zap.NewNop()).(*identityResolver)
	return codec, tracker, resolver
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := exceptions.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestIdentityResolver_Resolve(t *testing.T) {
	codec, tracker, resolver := newResolverFixture(t)

	doctorToken, err := codec.Issue("doc-1", constvars.RoleDoctor, constvars.AccountTypeUser)
	require.NoError(t, err)
	adminToken, err := codec.Issue("admin-1", constvars.RoleAdmin, constvars.AccountTypeAdmin)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+doctorToken.Token)

		principal, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "doc-1", principal.SubjectID)
		assert.Equal(t, constvars.RoleDoctor, principal.Role)
	})

	t.Run("cookie fallback when no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken.Token})

		principal, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", principal.SubjectID)
		assert.Equal(t, constvars.AccountTypeAdmin, principal.AccountType)
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+doctorToken.Token)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken.Token})

		principal, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "doc-1", principal.SubjectID)
	})

	t.Run("non bearer scheme falls back to cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken.Token})

		principal, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", principal.SubjectID)
	})

	t.Run("no credential is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := resolver.Resolve(req)
		requireStatus(t, err, constvars.StatusUnauthorized)
		tracker.AssertNotCalled(t, "RecordFailure", mock.Anything, mock.Anything)
	})

	t.Run("invalid credential is 403 and tracked", func(t *testing.T) {
		tracker.On("RecordFailure", mock.Anything, "192.0.2.1").Return(int64(1), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:4321"
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")

		_, err := resolver.Resolve(req)
		requireStatus(t, err, constvars.StatusForbidden)
		assert.ErrorIs(t, err, jwtmanager.ErrTokenMalformed, "exact cause stays reachable for logging")
		tracker.AssertExpectations(t)
	})

	t.Run("tracker failure does not change the response", func(t *testing.T) {
		tracker.On("RecordFailure", mock.Anything, "192.0.2.2").Return(int64(0), errors.New("redis down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.2:4321"
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "garbage"})

		_, err := resolver.Resolve(req)
		requireStatus(t, err, constvars.StatusForbidden)
		tracker.AssertExpectations(t)
	})
}

func TestIdentityResolver_CollapsesCodecFailures(t *testing.T) {
	codec, tracker, resolver := newResolverFixture(t)
	tracker.On("RecordFailure", mock.Anything, mock.Anything).Return(int64(1), nil)

	token, err := codec.Issue("p-1", constvars.RolePatient, constvars.AccountTypeUser)
	require.NoError(t, err)

	other, err := jwtmanager.NewJWTManager("other-secret", time.Hour, zap.NewNop())
	require.NoError(t, err)
	foreign, err := other.Issue("p-1", constvars.RolePatient, constvars.AccountTypeUser)
	require.NoError(t, err)

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          "p-1",
		"role":         string(constvars.RolePatient),
		"account_type": string(constvars.AccountTypeUser),
		"exp":          time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("resolver-secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"malformed": token.Token[:len(token.Token)/2],
		"signature": foreign.Token,
		"expired":   expiredToken,
	}

	var clientMessages []string
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(constvars.HeaderAuthorization, "Bearer "+raw)

			_, err := resolver.Resolve(req)
			requireStatus(t, err, constvars.StatusForbidden)
			customErr, _ := exceptions.AsCustomError(err)
			clientMessages = append(clientMessages, customErr.ClientMessage)
		})
	}

	require.Len(t, clientMessages, 3)
	assert.Equal(t, clientMessages[0], clientMessages[1])
	assert.Equal(t, clientMessages[1], clientMessages[2], "client never learns which check failed")
}
