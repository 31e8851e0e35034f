package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// EmployeeService implements provisioning and management of employee accounts.
// Employees are always created by a manager; the service stamps the creating
// manager's id on the record.
type EmployeeService struct {
	repo ports.EmployeeRepository
	log  zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

// Create provisions a new employee account with a generated employee id and a
// bcrypt-hashed password.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if input.Name == "" || input.Gender == "" || input.Contact == "" ||
		input.Username == "" || input.Password == "" || input.Salary <= 0 {
		return nil, fmt.Errorf("%w: missing or invalid employee fields", domain.ErrValidation)
	}

	employeeID, err := s.nextEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		EmployeeID:   employeeID,
		Name:         input.Name,
		Gender:       input.Gender,
		Contact:      input.Contact,
		Salary:       input.Salary,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
		ManagerID:    input.ManagerID,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("employee_id", created.EmployeeID).
		Str("manager_id", input.ManagerID).
		Msg("employee provisioned")
	return created, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Search(ctx context.Context, term string) ([]*domain.Employee, error) {
	return s.repo.Search(ctx, term)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// nextEmployeeID generates ids in the form EMPYYMMNNNN, continuing the
// sequence from the highest id already assigned.
func (s *EmployeeService) nextEmployeeID(ctx context.Context) (string, error) {
	last, err := s.repo.LastEmployeeID(ctx)
	if err != nil {
		return "", fmt.Errorf("generate employee id: %w", err)
	}

	seq := 1
	if len(last) >= 4 {
		if n, err := strconv.Atoi(last[len(last)-4:]); err == nil {
			seq = n + 1
		}
	}

	now := time.Now().UTC()
	return fmt.Sprintf("EMP%02d%02d%04d", now.Year()%100, int(now.Month()), seq), nil
}
