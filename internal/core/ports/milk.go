package ports

import (
	"context"
	"time"

	"github.com/farmops/farm-api/internal/core/domain"
)

// MilkFilter narrows a milk record listing. Date, when non-zero, restricts
// results to that calendar day.
type MilkFilter struct {
	AnimalID string
	Date     time.Time
}

// MilkRepository defines persistence for milk production records.
type MilkRepository interface {
	Create(ctx context.Context, r *domain.MilkRecord) (*domain.MilkRecord, error)
	// List returns records matching filter, newest production date first.
	List(ctx context.Context, filter MilkFilter) ([]*domain.MilkRecord, error)
	// DayStats aggregates per-day totals and quality for the most recent days.
	DayStats(ctx context.Context, limit int) ([]domain.MilkDayStats, error)
	// TotalForDay sums the quantity produced on the given calendar day.
	TotalForDay(ctx context.Context, day time.Time) (float64, error)
}

// CreateMilkRecordInput carries the fields for a new production entry.
// RecordedBy is taken from the authenticated principal, not the payload.
type CreateMilkRecordInput struct {
	ProductionDate time.Time
	AnimalID       string
	Quantity       float64
	Quality        domain.MilkQuality
	RecordedBy     string
	RecordedByName string
}

// MilkService defines use-case operations on milk production records.
type MilkService interface {
	Create(ctx context.Context, input CreateMilkRecordInput) (*domain.MilkRecord, error)
	List(ctx context.Context, filter MilkFilter) ([]*domain.MilkRecord, error)
	Stats(ctx context.Context) ([]domain.MilkDayStats, error)
}
