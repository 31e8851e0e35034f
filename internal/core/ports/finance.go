package ports

import (
	"context"
	"time"

	"github.com/farmops/farm-api/internal/core/domain"
)

// FinanceRepository defines persistence for finance records.
type FinanceRepository interface {
	Create(ctx context.Context, r *domain.FinanceRecord) (*domain.FinanceRecord, error)
	// List returns records newest first; date, when non-zero, restricts
	// results to that calendar day.
	List(ctx context.Context, date time.Time) ([]*domain.FinanceRecord, error)
	// MonthStats aggregates per-month totals for the most recent months.
	MonthStats(ctx context.Context, limit int) ([]domain.FinanceMonthStats, error)
}

// CreateFinanceRecordInput carries the fields for a new finance record.
type CreateFinanceRecordInput struct {
	Date         time.Time
	TotalRevenue float64
	TotalExpense float64
	RecordedBy   string
}

// FinanceService defines use-case operations on finance records.
type FinanceService interface {
	Create(ctx context.Context, input CreateFinanceRecordInput) (*domain.FinanceRecord, error)
	List(ctx context.Context, date time.Time) ([]*domain.FinanceRecord, error)
	Stats(ctx context.Context) ([]domain.FinanceMonthStats, error)
}
