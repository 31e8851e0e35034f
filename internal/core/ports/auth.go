package ports

import (
	"context"

	"github.com/farmops/farm-api/internal/core/domain"
)

// CredentialStore resolves account records for verified token claims. The
// auth middleware performs exactly one lookup per request; a missing record
// means the account was deleted after the token was issued and the request
// must be treated as unauthenticated.
type CredentialStore interface {
	FindManagerByID(ctx context.Context, id string) (*domain.Manager, error)
	FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// RegisterManagerInput carries the public manager signup fields.
type RegisterManagerInput struct {
	Username string
	FullName string
	Password string
	Contact  string
}

// ManagerAuthResult is returned by manager registration and login.
type ManagerAuthResult struct {
	Token   string
	Manager *domain.Manager
}

// EmployeeAuthResult is returned by employee login.
type EmployeeAuthResult struct {
	Token    string
	Employee *domain.Employee
}

// AuthService implements registration and the two login flows.
type AuthService interface {
	RegisterManager(ctx context.Context, input RegisterManagerInput) (*ManagerAuthResult, error)
	LoginManager(ctx context.Context, username, password string) (*ManagerAuthResult, error)
	LoginEmployee(ctx context.Context, username, password string) (*EmployeeAuthResult, error)
}
