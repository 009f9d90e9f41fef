package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAdminTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "admin", claims.Role)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestGenerateAdminTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateAdminToken()
	assert.Error(t, err)
}

func TestAdminClaimsRejectNonAdminRole(t *testing.T) {
	claims := AdminClaims{Role: "user"}
	assert.Error(t, claims.Valid())

	claims.Role = "admin"
	assert.NoError(t, claims.Valid())
}

func TestAdminClaimsRejectExpiredToken(t *testing.T) {
	claims := AdminClaims{
		Role:           "admin",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
	}
	assert.Error(t, claims.Valid())
}

func TestRevokeTokenInMemory(t *testing.T) {
	ctx := context.Background()
	token := "some.revoked.token"

	assert.False(t, IsTokenRevoked(ctx, token))
	RevokeToken(ctx, token, time.Now().Add(time.Hour))
	assert.True(t, IsTokenRevoked(ctx, token))
}

func TestRevokeTokenIgnoresExpired(t *testing.T) {
	ctx := context.Background()
	token := "already.expired.token"

	RevokeToken(ctx, token, time.Now().Add(-time.Minute))
	assert.False(t, IsTokenRevoked(ctx, token))
}
