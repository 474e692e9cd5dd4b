package jwt

import (
	"context"
	"testing"

	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, expiresAt, err := svc.GenerateAccessToken("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", "bos", user.RoleOwner)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", claims["user_id"])
	assert.Equal(t, "bos", claims["username"])
	assert.Equal(t, "bos", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "soon", "24h")
	_, _, err := svc.GenerateAccessToken("id", "budi", user.RoleWorker)
	assert.Error(t, err)
}

func TestParseRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	refresh, _, err := svc.GenerateRefreshToken("worker-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "worker-1", userID)

	t.Run("access token is rejected", func(t *testing.T) {
		access, _, err := svc.GenerateAccessToken("worker-1", "budi", user.RoleWorker)
		require.NoError(t, err)
		_, err = svc.ParseRefreshToken(access)
		assert.Error(t, err)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		svc.RevokeToken(refresh)
		assert.True(t, svc.IsTokenRevoked(refresh))
		_, err := svc.ParseRefreshToken(refresh)
		assert.Error(t, err)
	})

	t.Run("foreign signature is rejected", func(t *testing.T) {
		other := NewJWTService("another-secret", "1h", "24h")
		foreign, _, err := other.GenerateRefreshToken("worker-1")
		require.NoError(t, err)
		_, err = svc.ParseRefreshToken(foreign)
		assert.Error(t, err)
	})
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	a, _, err := svc.GenerateRefreshToken("worker-1")
	require.NoError(t, err)
	b, _, err := svc.GenerateRefreshToken("worker-1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	cookie := svc.RefreshTokenCookie("token", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}
