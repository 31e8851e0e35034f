package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

const collectionMilkRecords = "milk_records"

type MilkRepository struct {
	col *mongo.Collection
}

func NewMilkRepository(db *mongo.Database) *MilkRepository {
	return &MilkRepository{col: db.Collection(collectionMilkRecords)}
}

// Create inserts a new production entry.
func (r *MilkRepository) Create(ctx context.Context, rec *domain.MilkRecord) (*domain.MilkRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *rec
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert milk record: %w", err)
	}
	return &created, nil
}

// List returns records matching filter, newest production date first.
func (r *MilkRepository) List(ctx context.Context, filter ports.MilkFilter) ([]*domain.MilkRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.AnimalID != "" {
		query["animal_id"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.AnimalID), Options: "i"}
	}
	if !filter.Date.IsZero() {
		start := filter.Date.Truncate(24 * time.Hour)
		query["production_date"] = bson.M{
			"$gte": start,
			"$lt":  start.Add(24 * time.Hour),
		}
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "production_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find milk records: %w", err)
	}
	defer cur.Close(ctx)

	var records []*domain.MilkRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode milk records: %w", err)
	}
	return records, nil
}

// qualityScoreExpr maps the quality grade onto its numeric score inside the
// aggregation pipeline. Must stay in step with domain.MilkQuality.Score.
func qualityScoreExpr() bson.M {
	return bson.M{"$switch": bson.M{
		"branches": bson.A{
			bson.M{"case": bson.M{"$eq": bson.A{"$quality", string(domain.QualityExcellent)}}, "then": 4},
			bson.M{"case": bson.M{"$eq": bson.A{"$quality", string(domain.QualityGood)}}, "then": 3},
			bson.M{"case": bson.M{"$eq": bson.A{"$quality", string(domain.QualityAverage)}}, "then": 2},
			bson.M{"case": bson.M{"$eq": bson.A{"$quality", string(domain.QualityPoor)}}, "then": 1},
		},
		"default": 0,
	}}
}

// DayStats aggregates per-day totals and average quality for the most recent
// limit days.
func (r *MilkRepository) DayStats(ctx context.Context, limit int) ([]domain.MilkDayStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$production_date",
			}},
			"total_quantity": bson.M{"$sum": "$quantity"},
			"count":          bson.M{"$sum": 1},
			"avg_quality":    bson.M{"$avg": qualityScoreExpr()},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("milk day stats: %w", err)
	}
	defer cur.Close(ctx)

	var stats []domain.MilkDayStats
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode milk day stats: %w", err)
	}

	for i := range stats {
		stats[i].QualityRating = ratingForScore(stats[i].AvgQuality)
	}
	return stats, nil
}

// ratingForScore maps an average quality score back onto a grade label.
func ratingForScore(score float64) string {
	switch {
	case score >= 3.5:
		return string(domain.QualityExcellent)
	case score >= 2.5:
		return string(domain.QualityGood)
	case score >= 1.5:
		return string(domain.QualityAverage)
	default:
		return string(domain.QualityPoor)
	}
}

// TotalForDay sums the quantity produced on the given calendar day.
func (r *MilkRepository) TotalForDay(ctx context.Context, day time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	start := day.Truncate(24 * time.Hour)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"production_date": bson.M{
			"$gte": start,
			"$lt":  start.Add(24 * time.Hour),
		}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$quantity"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("milk total for day: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode milk total: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// EnsureIndexes creates the lookup indexes on the milk records collection.
func (r *MilkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "production_date", Value: -1}}},
		{Keys: bson.D{{Key: "animal_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
