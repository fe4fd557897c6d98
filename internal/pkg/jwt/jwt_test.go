//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(clk clock.Clock) *jwt.Service {
	return jwt.NewService("test-secret", 15*time.Minute, 720*time.Hour, clk)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newService(clock.NewFixedClock(time.Now()))
	userID := uuid.New()

	t.Run("access token round-trips its claims", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleGuest)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "guest", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token carries the refresh type", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
		assert.Equal(t, "admin", claims.Role)
	})
}

func TestValidateToken_Failures(t *testing.T) {
	userID := uuid.New()

	t.Run("expired token", func(t *testing.T) {
		// Issue with a clock far enough in the past that the 15m access
		// window has already closed.
		stale := newService(clock.NewFixedClock(time.Now().Add(-2 * time.Hour)))
		token, err := stale.GenerateAccessToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = stale.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		svc := newService(clock.NewFixedClock(time.Now()))
		other := jwt.NewService("other-secret", 15*time.Minute, 720*time.Hour, clock.NewFixedClock(time.Now()))

		token, err := other.GenerateAccessToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage input", func(t *testing.T) {
		svc := newService(clock.NewFixedClock(time.Now()))
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
