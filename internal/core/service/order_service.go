package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

// OrderQueue is the interface the order service uses to hand placed orders to
// the asynchronous audit workers.
type OrderQueue interface {
	Enqueue(event ports.OrderPlacedInput)
}

// OrderService implements the public customer ordering flow and the
// employee-facing order management operations.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	queue    OrderQueue
	log      zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, queue OrderQueue, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, queue: queue, log: log}
}

// Place validates and persists a customer order. Every item is repriced from
// the product catalog; the client-quoted total is only accepted when it
// matches the recomputed sum within domain.OrderTotalTolerance.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if input.Customer.Name == "" || input.Customer.Contact == "" || input.Customer.Address == "" {
		return nil, fmt.Errorf("%w: missing customer fields", domain.ErrValidation)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	var total float64
	for _, item := range input.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, fmt.Errorf("%w: invalid item data", domain.ErrValidation)
		}

		product, err := s.products.FindByProductID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, err)
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Price:     product.PricePerUnit,
			Quantity:  item.Quantity,
		})
		total += product.PricePerUnit * float64(item.Quantity)
	}

	if math.Abs(total-input.TotalAmount) > domain.OrderTotalTolerance {
		return nil, fmt.Errorf("%w: expected %.2f, got %.2f", domain.ErrOrderTotalMismatch, total, input.TotalAmount)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderID:     "ORD-" + uuid.NewString(),
		Customer:    domain.Customer(input.Customer),
		Items:       items,
		TotalAmount: total,
		Status:      domain.OrderPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	if s.queue != nil {
		s.queue.Enqueue(ports.OrderPlacedInput{
			OrderID:     created.OrderID,
			Status:      created.Status,
			TotalAmount: created.TotalAmount,
			ItemCount:   len(created.Items),
			Timestamp:   now,
		})
	}

	s.log.Info().
		Str("order_id", created.OrderID).
		Float64("total", created.TotalAmount).
		Int("items", len(created.Items)).
		Msg("order placed")
	return created, nil
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidOrderStatus
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}
