package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// AuthService implements manager registration plus the manager and employee
// login flows. All passwords are bcrypt-hashed at rest; plaintext is never
// stored and comparison only happens through bcrypt.
type AuthService struct {
	managers  ports.ManagerRepository
	employees ports.EmployeeRepository
	tokens    ports.TokenService
	limiter   ports.LoginLimiter
	log       zerolog.Logger
}

func NewAuthService(
	managers ports.ManagerRepository,
	employees ports.EmployeeRepository,
	tokens ports.TokenService,
	limiter ports.LoginLimiter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		managers:  managers,
		employees: employees,
		tokens:    tokens,
		limiter:   limiter,
		log:       log,
	}
}

// RegisterManager creates a manager account and logs it straight in.
func (s *AuthService) RegisterManager(ctx context.Context, input ports.RegisterManagerInput) (*ports.ManagerAuthResult, error) {
	if input.Username == "" || input.Password == "" || input.FullName == "" || input.Contact == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	manager := &domain.Manager{
		Username:     input.Username,
		FullName:     input.FullName,
		Contact:      input.Contact,
		PasswordHash: string(hash),
		Role:         domain.RoleManager,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.managers.Create(ctx, manager)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, domain.RoleManager)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("manager registered")
	return &ports.ManagerAuthResult{Token: token, Manager: created}, nil
}

// LoginManager authenticates a manager by username and password. The same
// ErrInvalidCredentials is returned whether the username or the password was
// wrong.
func (s *AuthService) LoginManager(ctx context.Context, username, password string) (*ports.ManagerAuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.checkThrottle(ctx, username); err != nil {
		return nil, err
	}

	manager, err := s.managers.FindByUsername(ctx, username)
	if err != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(manager.ID, domain.RoleManager)
	if err != nil {
		return nil, err
	}

	s.resetThrottle(ctx, username)
	return &ports.ManagerAuthResult{Token: token, Manager: manager}, nil
}

// LoginEmployee authenticates an employee by username and password.
func (s *AuthService) LoginEmployee(ctx context.Context, username, password string) (*ports.EmployeeAuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.checkThrottle(ctx, username); err != nil {
		return nil, err
	}

	employee, err := s.employees.FindByUsername(ctx, username)
	if err != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(employee.ID, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}

	s.resetThrottle(ctx, username)
	return &ports.EmployeeAuthResult{Token: token, Employee: employee}, nil
}

// checkThrottle consults the limiter. Limiter outages fail open so Redis
// downtime cannot lock everyone out.
func (s *AuthService) checkThrottle(ctx context.Context, username string) error {
	if s.limiter == nil {
		return nil
	}
	blocked, err := s.limiter.TooManyAttempts(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, allowing attempt")
		return nil
	}
	if blocked {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) resetThrottle(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login limiter")
	}
}
