package ports

import "github.com/farmops/farm-api/internal/core/domain"

// TokenClaims is the trusted subset of a verified token's payload. Everything
// else about the principal is resolved from storage, not from the token.
type TokenClaims struct {
	SubjectID string
	Role      domain.Role
}

// TokenService issues and verifies signed bearer tokens. Both operations are
// pure computation; neither touches storage.
type TokenService interface {
	// Issue returns a signed token for the given subject and role.
	Issue(subjectID string, role domain.Role) (string, error)
	// Verify checks signature and expiry. Any failure, whether the token is
	// malformed, forged, or expired, yields domain.ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)
}
