package ports

import (
	"context"
	"time"

	"github.com/farmops/farm-api/internal/core/domain"
)

// SaleRepository defines persistence for sale records.
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	FindBySaleID(ctx context.Context, saleID string) (*domain.Sale, error)
	// List returns sales, newest first, optionally filtered by sale id.
	List(ctx context.Context, saleID string) ([]*domain.Sale, error)
	// DayStats aggregates per-day revenue for the most recent days.
	DayStats(ctx context.Context, limit int) ([]domain.SalesDayStats, error)
}

// CreateSaleInput carries the fields for a new sale record.
type CreateSaleInput struct {
	SaleID         string
	SaleDate       time.Time
	CustomerName   string
	ProductID      string
	TotalCost      float64
	RecordedBy     string
	RecordedByName string
}

// SaleService defines use-case operations on sale records.
type SaleService interface {
	Create(ctx context.Context, input CreateSaleInput) (*domain.Sale, error)
	List(ctx context.Context, saleID string) ([]*domain.Sale, error)
	Stats(ctx context.Context) ([]domain.SalesDayStats, error)
}
