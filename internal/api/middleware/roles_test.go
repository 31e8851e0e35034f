package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/domain"
)

func contextWithPrincipal(e *echo.Echo, p *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		c.Set(principalKey, *p)
	}
	return c, rec
}

func TestManagerOnly_AllowsManager(t *testing.T) {
	e := echo.New()
	c, _ := contextWithPrincipal(e, &domain.Principal{ID: "m1", Role: domain.RoleManager})

	called := false
	handler := ManagerOnly(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestManagerOnly_RejectsEmployee(t *testing.T) {
	e := echo.New()
	c, rec := contextWithPrincipal(e, &domain.Principal{ID: "e1", Role: domain.RoleEmployee})

	handler := ManagerOnly(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

// A guard reached without a principal means Authenticate never ran. That is a
// wiring bug and must fail closed as unauthenticated, not fall through.
func TestManagerOnly_MissingPrincipal(t *testing.T) {
	e := echo.New()
	c, rec := contextWithPrincipal(e, nil)

	handler := ManagerOnly(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestEmployeeOnly_AllowsEmployee(t *testing.T) {
	e := echo.New()
	c, _ := contextWithPrincipal(e, &domain.Principal{ID: "e1", Role: domain.RoleEmployee, Name: "Bob"})

	called := false
	handler := EmployeeOnly(func(c echo.Context) error {
		called = true
		emp, ok := c.Get(employeeKey).(domain.Principal)
		if !ok || emp.ID != "e1" {
			t.Fatalf("employee context not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestEmployeeOnly_RejectsManager(t *testing.T) {
	e := echo.New()
	c, rec := contextWithPrincipal(e, &domain.Principal{ID: "m1", Role: domain.RoleManager})

	handler := EmployeeOnly(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestEmployeeOnly_MissingPrincipal(t *testing.T) {
	e := echo.New()
	c, rec := contextWithPrincipal(e, nil)

	handler := EmployeeOnly(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
