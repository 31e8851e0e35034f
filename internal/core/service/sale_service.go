package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

const salesStatsDays = 30

// SaleService implements point-of-sale record operations.
type SaleService struct {
	repo ports.SaleRepository
	log  zerolog.Logger
}

func NewSaleService(repo ports.SaleRepository, log zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, log: log}
}

func (s *SaleService) Create(ctx context.Context, input ports.CreateSaleInput) (*domain.Sale, error) {
	if input.SaleID == "" || input.CustomerName == "" || input.ProductID == "" || input.SaleDate.IsZero() {
		return nil, fmt.Errorf("%w: missing sale fields", domain.ErrValidation)
	}
	if input.TotalCost <= 0 {
		return nil, fmt.Errorf("%w: total cost must be greater than 0", domain.ErrValidation)
	}

	if _, err := s.repo.FindBySaleID(ctx, input.SaleID); err == nil {
		return nil, domain.ErrSaleExists
	}

	sale := &domain.Sale{
		SaleID:         input.SaleID,
		SaleDate:       input.SaleDate,
		CustomerName:   input.CustomerName,
		ProductID:      input.ProductID,
		TotalCost:      input.TotalCost,
		RecordedBy:     input.RecordedBy,
		RecordedByName: input.RecordedByName,
		RecordedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, sale)
	if err != nil {
		s.log.Error().Err(err).Str("sale_id", sale.SaleID).Msg("failed to create sale")
		return nil, err
	}
	return created, nil
}

func (s *SaleService) List(ctx context.Context, saleID string) ([]*domain.Sale, error) {
	return s.repo.List(ctx, saleID)
}

func (s *SaleService) Stats(ctx context.Context) ([]domain.SalesDayStats, error) {
	return s.repo.DayStats(ctx, salesStatsDays)
}
