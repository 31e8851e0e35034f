package ports

import (
	"context"

	"github.com/farmops/farm-api/internal/core/domain"
)

// ManagerRepository defines persistence for manager accounts.
type ManagerRepository interface {
	Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error)
	FindByUsername(ctx context.Context, username string) (*domain.Manager, error)
	FindByID(ctx context.Context, id string) (*domain.Manager, error)
}
