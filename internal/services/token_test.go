package services

import (
	"testing"
	"time"

	"github.com/haojie/dochub-api/internal/config"
	"github.com/stretchr/testify/require"
)

func testTokenService(accessTTL time.Duration) *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: time.Hour,
	})
}

func TestTokenPair_RoundTrip(t *testing.T) {
	svc := testTokenService(time.Minute)

	access, refresh, err := svc.GenerateTokenPair(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.True(t, claims.IsSuperuser)
	require.Equal(t, TokenTypeAccess, claims.TokenType)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	require.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	access, _, err := testTokenService(time.Minute).GenerateTokenPair(1, false)
	require.NoError(t, err)

	other := NewTokenService(&config.Config{
		JWTSecret:       "another-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	_, err = other.ValidateToken(access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testTokenService(-time.Minute)

	access, _, err := svc.GenerateTokenPair(1, false)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testTokenService(time.Minute)

	_, err := svc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
