package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// CredentialStore adapts the manager and employee repositories into the
// single lookup surface the auth middleware depends on.
type CredentialStore struct {
	managers  *ManagerRepository
	employees *EmployeeRepository
}

func NewCredentialStore(db *mongo.Database) ports.CredentialStore {
	return &CredentialStore{
		managers:  NewManagerRepository(db),
		employees: NewEmployeeRepository(db),
	}
}

func (s *CredentialStore) FindManagerByID(ctx context.Context, id string) (*domain.Manager, error) {
	return s.managers.FindByID(ctx, id)
}

func (s *CredentialStore) FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}
