package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/farmops/farm-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("user_1", domain.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user_1", claims.SubjectID)
	require.Equal(t, domain.RoleManager, claims.Role)
}

func TestTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	require.Error(t, err)
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc, err := NewTokenService("secret", 0)
	require.NoError(t, err)

	token, err := svc.Issue("user_1", domain.RoleEmployee)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)

	want := time.Now().Add(DefaultTokenTTL)
	require.WithinDuration(t, want, exp.Time, time.Minute)
}

func TestTokenService_Expired(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":  "user_1",
		"role": string(domain.RoleManager),
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := NewTokenService("issuer-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user_1", domain.RoleManager)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tok)
		require.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}

func TestTokenService_UnknownRole(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":  "user_1",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":  "user_1",
		"role": string(domain.RoleManager),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
