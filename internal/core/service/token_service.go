package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// DefaultTokenTTL matches the 30-day expiry issued at login.
const DefaultTokenTTL = 30 * 24 * time.Hour

// TokenService issues and verifies HS256-signed JWTs carrying the subject id
// and role. Tokens are stateless bearer credentials: once issued they stay
// cryptographically valid until expiry, so revocation happens by deleting the
// backing account (the middleware re-resolves it on every request).
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService. An empty secret is a configuration
// error: signing with a default or empty key would let anyone forge tokens.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue returns a signed token whose payload is exactly {sub, role, exp}.
func (s *TokenService) Issue(subjectID string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": string(role),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a presented token. Malformed, forged, and
// expired tokens all collapse into domain.ErrInvalidToken; the caller has a
// single unauthenticated path.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || !domain.Role(role).Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{SubjectID: sub, Role: domain.Role(role)}, nil
}
