package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

type stubTokenService struct {
	claims map[string]*ports.TokenClaims
}

func (s *stubTokenService) Issue(string, domain.Role) (string, error) {
	return "", nil
}

func (s *stubTokenService) Verify(token string) (*ports.TokenClaims, error) {
	if c, ok := s.claims[token]; ok {
		return c, nil
	}
	return nil, domain.ErrInvalidToken
}

type stubCredentialStore struct {
	managers  map[string]*domain.Manager
	employees map[string]*domain.Employee
}

func (s *stubCredentialStore) FindManagerByID(_ context.Context, id string) (*domain.Manager, error) {
	if m, ok := s.managers[id]; ok {
		return m, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubCredentialStore) FindEmployeeByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := s.employees[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func authFixture() (ports.TokenService, *stubCredentialStore) {
	tokens := &stubTokenService{claims: map[string]*ports.TokenClaims{
		"manager-token":  {SubjectID: "m1", Role: domain.RoleManager},
		"employee-token": {SubjectID: "e1", Role: domain.RoleEmployee},
		"orphan-token":   {SubjectID: "gone", Role: domain.RoleManager},
	}}
	store := &stubCredentialStore{
		managers: map[string]*domain.Manager{
			"m1": {ID: "m1", Username: "alice", FullName: "Alice Doe", Role: domain.RoleManager},
		},
		employees: map[string]*domain.Employee{
			"e1": {ID: "e1", Username: "bob", Name: "Bob Roe", Role: domain.RoleEmployee},
		},
	}
	return tokens, store
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens, store := authFixture()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer manager-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(tokens, store)(func(c echo.Context) error {
		called = true
		p, ok := Principal(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		if p.ID != "m1" || p.Role != domain.RoleManager {
			t.Fatalf("unexpected principal: %+v", p)
		}
		if p.Username != "alice" || p.Name != "Alice Doe" {
			t.Fatalf("principal not resolved from store: %+v", p)
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

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens, store := authFixture()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, store)(func(c echo.Context) error {
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

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokens, store := authFixture()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token manager-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, store)(func(c echo.Context) error {
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

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens, store := authFixture()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, store)(func(c echo.Context) error {
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

// A valid token whose account has since been deleted must be rejected exactly
// like a forged one.
func TestAuthenticate_DeletedAccount(t *testing.T) {
	tokens, store := authFixture()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer orphan-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, store)(func(c echo.Context) error {
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

func TestAuthenticate_BearerCaseInsensitive(t *testing.T) {
	tokens, store := authFixture()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer employee-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(tokens, store)(func(c echo.Context) error {
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
