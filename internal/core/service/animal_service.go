package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// AnimalService implements livestock record operations.
type AnimalService struct {
	repo ports.AnimalRepository
	log  zerolog.Logger
}

func NewAnimalService(repo ports.AnimalRepository, log zerolog.Logger) *AnimalService {
	return &AnimalService{repo: repo, log: log}
}

func (s *AnimalService) Create(ctx context.Context, input ports.CreateAnimalInput) (*domain.Animal, error) {
	if input.AnimalID == "" || input.Name == "" || input.Gender == "" || input.Type == "" || input.Age == "" {
		return nil, fmt.Errorf("%w: missing animal fields", domain.ErrValidation)
	}
	if input.Weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", domain.ErrValidation)
	}

	animal := &domain.Animal{
		AnimalID:     strings.ToUpper(input.AnimalID),
		Name:         input.Name,
		Weight:       input.Weight,
		Gender:       input.Gender,
		Type:         input.Type,
		Age:          input.Age,
		RegisteredAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, animal)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("animal_id", created.AnimalID).Str("type", created.Type).Msg("animal registered")
	return created, nil
}

func (s *AnimalService) List(ctx context.Context) ([]*domain.Animal, error) {
	return s.repo.List(ctx)
}

func (s *AnimalService) Search(ctx context.Context, term string) ([]*domain.Animal, error) {
	return s.repo.Search(ctx, term)
}
