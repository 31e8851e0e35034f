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

// HealthReportService implements animal treatment record operations.
type HealthReportService struct {
	repo ports.HealthReportRepository
	log  zerolog.Logger
}

func NewHealthReportService(repo ports.HealthReportRepository, log zerolog.Logger) *HealthReportService {
	return &HealthReportService{repo: repo, log: log}
}

func (s *HealthReportService) Create(ctx context.Context, input ports.CreateHealthReportInput) (*domain.HealthReport, error) {
	if input.AnimalID == "" || input.AnimalName == "" || input.Treatment == "" || input.Date.IsZero() {
		return nil, fmt.Errorf("%w: missing health report fields", domain.ErrValidation)
	}
	if input.Cost <= 0 {
		return nil, fmt.Errorf("%w: cost must be a positive number", domain.ErrValidation)
	}

	report := &domain.HealthReport{
		AnimalID:      strings.ToUpper(input.AnimalID),
		AnimalName:    input.AnimalName,
		Date:          input.Date,
		Treatment:     input.Treatment,
		Cost:          input.Cost,
		TreatedBy:     input.TreatedBy,
		TreatedByName: input.TreatedByName,
		RecordedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.log.Error().Err(err).Str("animal_id", report.AnimalID).Msg("failed to create health report")
		return nil, err
	}
	return created, nil
}

func (s *HealthReportService) List(ctx context.Context, animalID string) ([]*domain.HealthReport, error) {
	return s.repo.List(ctx, animalID)
}
