package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/api/metrics"
	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// Context keys set by Authenticate and EmployeeOnly.
const (
	principalKey = "principal"
	employeeKey  = "employee"
)

// Principal returns the authenticated identity attached by Authenticate.
// The second return is false when the middleware has not run on this request.
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// Authenticate validates the bearer token and resolves it to a live account.
//
// The request is rejected with 401 when the Authorization header is missing
// or malformed, when the token fails verification, and when the account the
// token refers to no longer exists. That last case is deliberate: deleting an
// account revokes its outstanding tokens even though they remain
// cryptographically valid until expiry.
//
// On success an immutable domain.Principal is attached to the context. The
// 401 messages are intentionally uniform so clients cannot distinguish a
// forged token from a deleted account.
func Authenticate(tokens ports.TokenService, store ports.CredentialStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			principal, err := resolvePrincipal(c, store, claims)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("unknown_principal").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// resolvePrincipal performs the single credential-store read per request.
// Only the id and role are trusted from the token; name and username come
// from the stored record, and the password hash is never carried over.
func resolvePrincipal(c echo.Context, store ports.CredentialStore, claims *ports.TokenClaims) (domain.Principal, error) {
	ctx := c.Request().Context()

	switch claims.Role {
	case domain.RoleManager:
		m, err := store.FindManagerByID(ctx, claims.SubjectID)
		if err != nil {
			return domain.Principal{}, domain.ErrUnknownPrincipal
		}
		return domain.Principal{
			ID:       m.ID,
			Role:     domain.RoleManager,
			Username: m.Username,
			Name:     m.FullName,
		}, nil
	case domain.RoleEmployee:
		e, err := store.FindEmployeeByID(ctx, claims.SubjectID)
		if err != nil {
			return domain.Principal{}, domain.ErrUnknownPrincipal
		}
		return domain.Principal{
			ID:       e.ID,
			Role:     domain.RoleEmployee,
			Username: e.Username,
			Name:     e.Name,
		}, nil
	}

	return domain.Principal{}, domain.ErrUnknownPrincipal
}
