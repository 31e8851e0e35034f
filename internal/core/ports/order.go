package ports

import (
	"context"
	"time"

	"github.com/farmops/farm-api/internal/core/domain"
)

// OrderRepository defines persistence for customer orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	// List returns orders, newest first.
	List(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	// RevenueSince sums the total amount of orders created at or after from.
	RevenueSince(ctx context.Context, from time.Time) (float64, error)
}

// OrderEventRepository persists the asynchronous order audit trail.
type OrderEventRepository interface {
	Insert(ctx context.Context, e *domain.OrderEvent) error
}

// CustomerInput holds the contact fields of the ordering customer.
type CustomerInput struct {
	Name    string
	Contact string
	Address string
}

// OrderItemInput is one requested line of an order. Prices are not accepted
// from the client; only product id and quantity are read.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// PlaceOrderInput carries the public order submission.
type PlaceOrderInput struct {
	Customer    CustomerInput
	Items       []OrderItemInput
	TotalAmount float64
}

// OrderService defines use-case operations on customer orders.
type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

// OrderPlacedInput is the message handed to the order event workers.
type OrderPlacedInput struct {
	OrderID     string
	Status      domain.OrderStatus
	TotalAmount float64
	ItemCount   int
	Timestamp   time.Time
}

// OrderEventService processes a single order-placed event off the queue.
type OrderEventService interface {
	Process(ctx context.Context, in OrderPlacedInput) error
}
