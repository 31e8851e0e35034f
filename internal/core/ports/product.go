package ports

import (
	"context"
	"time"

	"github.com/farmops/farm-api/internal/core/domain"
)

// ProductRepository defines persistence for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByProductID(ctx context.Context, productID string) (*domain.Product, error)
	// List returns products, newest first, optionally matching search on
	// productId or name.
	List(ctx context.Context, search string) ([]*domain.Product, error)
}

// CreateProductInput carries the fields for a new catalog entry.
type CreateProductInput struct {
	ProductID      string
	Name           string
	PricePerUnit   float64
	Availability   string
	ProductionDate time.Time
	ExpirationDate time.Time
	CreatedBy      string
	CreatedByName  string
}

// ProductService defines use-case operations on the product catalog.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, search string) ([]*domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
}
