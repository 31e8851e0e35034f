package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

const collectionOrderEvents = "order_events"

// OrderEventRepository implements ports.OrderEventRepository using MongoDB.
type OrderEventRepository struct {
	col *mongo.Collection
}

func NewOrderEventRepository(db *mongo.Database) ports.OrderEventRepository {
	return &OrderEventRepository{col: db.Collection(collectionOrderEvents)}
}

// Insert persists an order event to the audit collection.
func (r *OrderEventRepository) Insert(ctx context.Context, e *domain.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"order_id":     e.OrderID,
		"status":       string(e.Status),
		"total_amount": e.TotalAmount,
		"item_count":   e.ItemCount,
		"timestamp":    e.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
