package domain

import "time"

// OrderStatus represents the lifecycle state of a customer order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// OrderTotalTolerance is the maximum drift allowed between the total quoted
// by the customer client and the total recomputed from catalog prices.
const OrderTotalTolerance = 0.01

// Customer holds the contact details supplied with an unauthenticated order.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact" bson:"contact"`
	Address string `json:"address" bson:"address"`
}

// OrderItem is a single line of an order. Price is always taken from the
// product catalog at order time, never from the client payload.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is a customer order placed through the public storefront endpoint.
type Order struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	OrderID     string      `json:"order_id" bson:"order_id"`
	Customer    Customer    `json:"customer" bson:"customer"`
	Items       []OrderItem `json:"items" bson:"items"`
	TotalAmount float64     `json:"total_amount" bson:"total_amount"`
	Status      OrderStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// OrderEvent is an audit trail entry recorded asynchronously by the order
// event workers.
type OrderEvent struct {
	OrderID     string      `json:"order_id" bson:"order_id"`
	Status      OrderStatus `json:"status" bson:"status"`
	TotalAmount float64     `json:"total_amount" bson:"total_amount"`
	ItemCount   int         `json:"item_count" bson:"item_count"`
	Timestamp   time.Time   `json:"timestamp" bson:"timestamp"`
}
