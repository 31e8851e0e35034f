package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// ProductService implements product catalog operations.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.ProductID == "" || input.Name == "" || input.Availability == "" ||
		input.ProductionDate.IsZero() || input.ExpirationDate.IsZero() {
		return nil, fmt.Errorf("%w: missing product fields", domain.ErrValidation)
	}
	if input.PricePerUnit <= 0 {
		return nil, fmt.Errorf("%w: price per unit must be positive", domain.ErrValidation)
	}
	if input.ProductionDate.After(input.ExpirationDate) {
		return nil, fmt.Errorf("%w: expiration date must be after production date", domain.ErrValidation)
	}

	product := &domain.Product{
		ProductID:      input.ProductID,
		Name:           input.Name,
		PricePerUnit:   input.PricePerUnit,
		Availability:   input.Availability,
		ProductionDate: input.ProductionDate,
		ExpirationDate: input.ExpirationDate,
		CreatedBy:      input.CreatedBy,
		CreatedByName:  input.CreatedByName,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ProductID).Msg("product added")
	return created, nil
}

func (s *ProductService) List(ctx context.Context, search string) ([]*domain.Product, error) {
	return s.repo.List(ctx, search)
}

func (s *ProductService) Get(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.FindByProductID(ctx, productID)
}
