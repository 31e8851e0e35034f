package ports

import (
	"context"
	"time"

	"github.com/farmops/farm-api/internal/core/domain"
)

// HealthReportRepository defines persistence for animal treatment records.
type HealthReportRepository interface {
	Create(ctx context.Context, r *domain.HealthReport) (*domain.HealthReport, error)
	// List returns reports, newest first, optionally filtered by animal id.
	List(ctx context.Context, animalID string) ([]*domain.HealthReport, error)
}

// CreateHealthReportInput carries the fields for a new treatment record.
type CreateHealthReportInput struct {
	AnimalID      string
	AnimalName    string
	Date          time.Time
	Treatment     string
	Cost          float64
	TreatedBy     string
	TreatedByName string
}

// HealthReportService defines use-case operations on treatment records.
type HealthReportService interface {
	Create(ctx context.Context, input CreateHealthReportInput) (*domain.HealthReport, error)
	List(ctx context.Context, animalID string) ([]*domain.HealthReport, error)
}
