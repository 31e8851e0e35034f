package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmops/farm-api/internal/core/domain"
)

const collectionFinanceRecords = "finance_records"

type FinanceRepository struct {
	col *mongo.Collection
}

func NewFinanceRepository(db *mongo.Database) *FinanceRepository {
	return &FinanceRepository{col: db.Collection(collectionFinanceRecords)}
}

// Create inserts a new finance record.
func (r *FinanceRepository) Create(ctx context.Context, rec *domain.FinanceRecord) (*domain.FinanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *rec
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert finance record: %w", err)
	}
	return &created, nil
}

// List returns records newest first; date, when non-zero, restricts results
// to that calendar day.
func (r *FinanceRepository) List(ctx context.Context, date time.Time) ([]*domain.FinanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if !date.IsZero() {
		start := date.Truncate(24 * time.Hour)
		query["date"] = bson.M{
			"$gte": start,
			"$lt":  start.Add(24 * time.Hour),
		}
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find finance records: %w", err)
	}
	defer cur.Close(ctx)

	var records []*domain.FinanceRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode finance records: %w", err)
	}
	return records, nil
}

// MonthStats aggregates per-month totals for the most recent limit months.
func (r *FinanceRepository) MonthStats(ctx context.Context, limit int) ([]domain.FinanceMonthStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$date",
			}},
			"total_revenue": bson.M{"$sum": "$total_revenue"},
			"total_expense": bson.M{"$sum": "$total_expense"},
			"count":         bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("finance month stats: %w", err)
	}
	defer cur.Close(ctx)

	var stats []domain.FinanceMonthStats
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode finance month stats: %w", err)
	}
	return stats, nil
}

// EnsureIndexes creates the date sort index on the finance collection.
func (r *FinanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
