package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

const financeStatsMonths = 12

// FinanceService implements revenue/expense record operations.
type FinanceService struct {
	repo ports.FinanceRepository
	log  zerolog.Logger
}

func NewFinanceService(repo ports.FinanceRepository, log zerolog.Logger) *FinanceService {
	return &FinanceService{repo: repo, log: log}
}

func (s *FinanceService) Create(ctx context.Context, input ports.CreateFinanceRecordInput) (*domain.FinanceRecord, error) {
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.TotalRevenue < 0 || input.TotalExpense < 0 {
		return nil, fmt.Errorf("%w: revenue and expense cannot be negative", domain.ErrValidation)
	}

	record := &domain.FinanceRecord{
		Date:         input.Date,
		TotalRevenue: input.TotalRevenue,
		TotalExpense: input.TotalExpense,
		RecordedBy:   input.RecordedBy,
		RecordedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create finance record")
		return nil, err
	}
	return created, nil
}

func (s *FinanceService) List(ctx context.Context, date time.Time) ([]*domain.FinanceRecord, error) {
	return s.repo.List(ctx, date)
}

func (s *FinanceService) Stats(ctx context.Context) ([]domain.FinanceMonthStats, error) {
	return s.repo.MonthStats(ctx, financeStatsMonths)
}
