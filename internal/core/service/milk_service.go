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

const milkStatsDays = 30

// MilkService implements milk production record operations.
type MilkService struct {
	repo ports.MilkRepository
	log  zerolog.Logger
}

func NewMilkService(repo ports.MilkRepository, log zerolog.Logger) *MilkService {
	return &MilkService{repo: repo, log: log}
}

func (s *MilkService) Create(ctx context.Context, input ports.CreateMilkRecordInput) (*domain.MilkRecord, error) {
	if input.AnimalID == "" || input.ProductionDate.IsZero() {
		return nil, fmt.Errorf("%w: animal id and production date are required", domain.ErrValidation)
	}
	if input.ProductionDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: production date cannot be in the future", domain.ErrValidation)
	}
	if input.Quantity < domain.MinMilkQuantityKg || input.Quantity > domain.MaxMilkQuantityKg {
		return nil, fmt.Errorf("%w: quantity must be between %v and %v kg",
			domain.ErrValidation, domain.MinMilkQuantityKg, domain.MaxMilkQuantityKg)
	}

	quality := input.Quality
	if quality == "" {
		quality = domain.QualityGood
	}
	if !quality.Valid() {
		return nil, fmt.Errorf("%w: unknown quality grade %q", domain.ErrValidation, quality)
	}

	record := &domain.MilkRecord{
		ProductionDate: input.ProductionDate,
		AnimalID:       strings.ToUpper(input.AnimalID),
		Quantity:       input.Quantity,
		Quality:        quality,
		RecordedBy:     input.RecordedBy,
		RecordedByName: input.RecordedByName,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		s.log.Error().Err(err).Str("animal_id", record.AnimalID).Msg("failed to create milk record")
		return nil, err
	}
	return created, nil
}

func (s *MilkService) List(ctx context.Context, filter ports.MilkFilter) ([]*domain.MilkRecord, error) {
	return s.repo.List(ctx, filter)
}

func (s *MilkService) Stats(ctx context.Context) ([]domain.MilkDayStats, error) {
	return s.repo.DayStats(ctx, milkStatsDays)
}
