package ports

import (
	"context"

	"github.com/farmops/farm-api/internal/core/domain"
)

// EmployeeRepository defines persistence for employee accounts.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	// Search matches employeeId or name, case-insensitively.
	Search(ctx context.Context, term string) ([]*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	// LastEmployeeID returns the highest assigned employee id, or "" when none exist.
	LastEmployeeID(ctx context.Context) (string, error)
	Count(ctx context.Context) (int64, error)
}

// CreateEmployeeInput carries the fields a manager supplies when provisioning
// an employee. The employee id is generated server-side.
type CreateEmployeeInput struct {
	Name      string
	Gender    string
	Contact   string
	Salary    float64
	Username  string
	Password  string
	ManagerID string
}

// UpdateEmployeeInput carries the mutable employee fields.
type UpdateEmployeeInput struct {
	Name    string
	Gender  string
	Contact string
	Salary  float64
}

// EmployeeService defines use-case operations on employee records.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Search(ctx context.Context, term string) ([]*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
