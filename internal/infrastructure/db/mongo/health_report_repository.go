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
)

const collectionHealthReports = "health_reports"

type HealthReportRepository struct {
	col *mongo.Collection
}

func NewHealthReportRepository(db *mongo.Database) *HealthReportRepository {
	return &HealthReportRepository{col: db.Collection(collectionHealthReports)}
}

// Create inserts a new treatment record.
func (r *HealthReportRepository) Create(ctx context.Context, rep *domain.HealthReport) (*domain.HealthReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *rep
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert health report: %w", err)
	}
	return &created, nil
}

// List returns reports, newest first, optionally filtered by animal id.
func (r *HealthReportRepository) List(ctx context.Context, animalID string) ([]*domain.HealthReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if animalID != "" {
		query["animal_id"] = primitive.Regex{Pattern: regexp.QuoteMeta(animalID), Options: "i"}
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find health reports: %w", err)
	}
	defer cur.Close(ctx)

	var reports []*domain.HealthReport
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode health reports: %w", err)
	}
	return reports, nil
}

// EnsureIndexes creates the lookup indexes on the health reports collection.
func (r *HealthReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "animal_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
