package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/api/metrics"
	"github.com/farmops/farm-api/internal/core/domain"
)

// ManagerOnly passes requests whose principal carries the manager role.
// Running without a principal is a wiring bug; it fails closed with 401
// rather than letting the request through.
func ManagerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(domain.RoleManager, "not authorized as manager", next)
}

// EmployeeOnly passes requests whose principal carries the employee role. On
// success the principal is also exposed under the employee context key for
// handlers written against an employee-shaped actor.
func EmployeeOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(domain.RoleEmployee, "not authorized as employee", func(c echo.Context) error {
		p, _ := Principal(c)
		c.Set(employeeKey, p)
		return next(c)
	})
}

func requireRole(role domain.Role, msg string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := Principal(c)
		if !ok {
			metrics.AuthFailuresTotal.WithLabelValues("missing_principal").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
		}
		if p.Role != role {
			metrics.AuthFailuresTotal.WithLabelValues("forbidden_role").Inc()
			return echo.NewHTTPError(http.StatusForbidden, msg)
		}
		return next(c)
	}
}
