package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	token, err := svc.GenerateAdminJWT("admin-1", "ops@modeva.com")
	require.NoError(t, err)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "ops@modeva.com", claims.Email)
}

func TestJWTServiceRejectsForeignAndExpiredTokens(t *testing.T) {
	svc, _ := NewJWTService("test-secret")
	other, _ := NewJWTService("other-secret")

	token, err := other.GenerateAdminJWT("admin-1", "ops@modeva.com")
	require.NoError(t, err)
	_, err = svc.VerifyAdminJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err = svc.GenerateAdminJWT("admin-1", "ops@modeva.com")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
	_, err = svc.VerifyAdminJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.Error(t, err)
}
