package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmops/farm-api/internal/core/domain"
)

const collectionSales = "sales"

type SaleRepository struct {
	col *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *SaleRepository {
	return &SaleRepository{col: db.Collection(collectionSales)}
}

// Create inserts a new sale record.
func (r *SaleRepository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *s
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSaleExists
		}
		return nil, fmt.Errorf("insert sale: %w", err)
	}
	return &created, nil
}

// FindBySaleID retrieves a sale by its receipt id.
func (r *SaleRepository) FindBySaleID(ctx context.Context, saleID string) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Sale
	if err := r.col.FindOne(ctx, bson.M{"sale_id": saleID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return &s, nil
}

// List returns sales, newest first, optionally filtered by sale id.
func (r *SaleRepository) List(ctx context.Context, saleID string) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if saleID != "" {
		query["sale_id"] = primitive.Regex{Pattern: regexp.QuoteMeta(saleID), Options: "i"}
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "sale_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer cur.Close(ctx)

	var sales []*domain.Sale
	if err := cur.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

// DayStats aggregates per-day revenue for the most recent limit days.
func (r *SaleRepository) DayStats(ctx context.Context, limit int) ([]domain.SalesDayStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$sale_date",
			}},
			"total_sales":   bson.M{"$sum": "$total_cost"},
			"count":         bson.M{"$sum": 1},
			"products_sold": bson.M{"$addToSet": "$product_id"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sales day stats: %w", err)
	}
	defer cur.Close(ctx)

	var stats []domain.SalesDayStats
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode sales day stats: %w", err)
	}
	return stats, nil
}

// EnsureIndexes creates the unique sale id index and the date sort index.
func (r *SaleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sale_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "sale_date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
