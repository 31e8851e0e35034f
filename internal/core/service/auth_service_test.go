package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

type stubManagerRepo struct {
	managers map[string]*domain.Manager
	nextID   int
}

func newStubManagerRepo() *stubManagerRepo {
	return &stubManagerRepo{managers: make(map[string]*domain.Manager)}
}

func (r *stubManagerRepo) Create(_ context.Context, m *domain.Manager) (*domain.Manager, error) {
	if _, exists := r.managers[m.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *m
	clone.ID = "m" + string(rune('0'+r.nextID))
	r.managers[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *stubManagerRepo) FindByUsername(_ context.Context, username string) (*domain.Manager, error) {
	if m, ok := r.managers[username]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubManagerRepo) FindByID(_ context.Context, id string) (*domain.Manager, error) {
	for _, m := range r.managers {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubEmployeeAuthRepo struct {
	ports.EmployeeRepository
	employees map[string]*domain.Employee
}

func (r *stubEmployeeAuthRepo) FindByUsername(_ context.Context, username string) (*domain.Employee, error) {
	if e, ok := r.employees[username]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

type stubLimiter struct {
	blocked  bool
	checkErr error
	failures int
	resets   int
}

func (l *stubLimiter) TooManyAttempts(context.Context, string) (bool, error) {
	return l.blocked, l.checkErr
}

func (l *stubLimiter) RecordFailure(context.Context, string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(context.Context, string) error {
	l.resets++
	return nil
}

func newAuthFixture(t *testing.T, limiter ports.LoginLimiter) (*AuthService, *stubManagerRepo) {
	t.Helper()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	managers := newStubManagerRepo()
	employees := &stubEmployeeAuthRepo{employees: make(map[string]*domain.Employee)}
	return NewAuthService(managers, employees, tokens, limiter, zerolog.Nop()), managers
}

func TestAuthService_RegisterManager(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	result, err := svc.RegisterManager(context.Background(), ports.RegisterManagerInput{
		Username: "alice",
		FullName: "Alice Doe",
		Password: "pass123",
		Contact:  "0123456789",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Manager.Role != domain.RoleManager {
		t.Fatalf("unexpected role: %s", result.Manager.Role)
	}
	if result.Manager.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.Manager.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_RegisterManager_Duplicate(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	input := ports.RegisterManagerInput{
		Username: "bob", FullName: "Bob", Password: "pass123", Contact: "c",
	}
	if _, err := svc.RegisterManager(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.RegisterManager(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_LoginManager(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	_, err := svc.RegisterManager(context.Background(), ports.RegisterManagerInput{
		Username: "carol", FullName: "Carol", Password: "s3cret", Contact: "c",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.LoginManager(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Manager.Username != "carol" {
		t.Fatalf("unexpected manager: %+v", result.Manager)
	}
}

// Wrong password and unknown username must be indistinguishable.
func TestAuthService_LoginManager_UniformFailure(t *testing.T) {
	svc, _ := newAuthFixture(t, nil)

	_, _ = svc.RegisterManager(context.Background(), ports.RegisterManagerInput{
		Username: "dave", FullName: "Dave", Password: "goodpass", Contact: "c",
	})

	_, badPass := svc.LoginManager(context.Background(), "dave", "badpass")
	_, noUser := svc.LoginManager(context.Background(), "ghost", "whatever")

	if !errors.Is(badPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", badPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", noUser)
	}
}

func TestAuthService_LoginManager_Throttled(t *testing.T) {
	limiter := &stubLimiter{blocked: true}
	svc, _ := newAuthFixture(t, limiter)

	if _, err := svc.LoginManager(context.Background(), "anyone", "pass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

// A limiter outage must not lock out logins.
func TestAuthService_LoginManager_LimiterFailsOpen(t *testing.T) {
	limiter := &stubLimiter{checkErr: errors.New("redis down")}
	svc, _ := newAuthFixture(t, limiter)

	_, err := svc.RegisterManager(context.Background(), ports.RegisterManagerInput{
		Username: "erin", FullName: "Erin", Password: "pass123", Contact: "c",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.LoginManager(context.Background(), "erin", "pass123"); err != nil {
		t.Fatalf("expected fail-open login, got %v", err)
	}
}

func TestAuthService_LoginManager_RecordsAndResets(t *testing.T) {
	limiter := &stubLimiter{}
	svc, _ := newAuthFixture(t, limiter)

	_, _ = svc.RegisterManager(context.Background(), ports.RegisterManagerInput{
		Username: "frank", FullName: "Frank", Password: "pass123", Contact: "c",
	})

	_, _ = svc.LoginManager(context.Background(), "frank", "wrong")
	if limiter.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", limiter.failures)
	}

	if _, err := svc.LoginManager(context.Background(), "frank", "pass123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected 1 reset, got %d", limiter.resets)
	}
}

func TestAuthService_LoginEmployee(t *testing.T) {
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("emp-pass"), bcrypt.DefaultCost)
	employees := &stubEmployeeAuthRepo{employees: map[string]*domain.Employee{
		"bob": {
			ID:           "e1",
			EmployeeID:   "EMP26080001",
			Name:         "Bob Roe",
			Username:     "bob",
			PasswordHash: string(hash),
			Role:         domain.RoleEmployee,
		},
	}}
	svc := NewAuthService(newStubManagerRepo(), employees, tokens, nil, zerolog.Nop())

	result, err := svc.LoginEmployee(context.Background(), "bob", "emp-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("token verify failed: %v", err)
	}
	if claims.Role != domain.RoleEmployee || claims.SubjectID != "e1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := svc.LoginEmployee(context.Background(), "bob", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
