package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/api/middleware"
	"github.com/farmops/farm-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Authenticate middleware
// and fails closed when it is absent. Handlers on protected routes may assume
// a populated principal; a missing one means the route was wired without the
// middleware, which must read as unauthorized, never as anonymous access.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}
