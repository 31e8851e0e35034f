package ports

import (
	"context"

	"github.com/farmops/farm-api/internal/core/domain"
)

// AnimalRepository defines persistence for livestock records.
type AnimalRepository interface {
	Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error)
	FindByAnimalID(ctx context.Context, animalID string) (*domain.Animal, error)
	// List returns all animals sorted by animal id.
	List(ctx context.Context) ([]*domain.Animal, error)
	// Search matches animalId, name, or type, case-insensitively.
	Search(ctx context.Context, term string) ([]*domain.Animal, error)
	Count(ctx context.Context) (int64, error)
}

// CreateAnimalInput carries the fields for registering an animal.
type CreateAnimalInput struct {
	AnimalID string
	Name     string
	Weight   float64
	Gender   string
	Type     string
	Age      string
}

// AnimalService defines use-case operations on livestock records.
type AnimalService interface {
	Create(ctx context.Context, input CreateAnimalInput) (*domain.Animal, error)
	List(ctx context.Context) ([]*domain.Animal, error)
	Search(ctx context.Context, term string) ([]*domain.Animal, error)
}
