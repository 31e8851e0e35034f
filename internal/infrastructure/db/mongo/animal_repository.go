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

const collectionAnimals = "animals"

type AnimalRepository struct {
	col *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{col: db.Collection(collectionAnimals)}
}

// Create inserts a new livestock record.
func (r *AnimalRepository) Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *a
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.col.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAnimalExists
		}
		return nil, fmt.Errorf("insert animal: %w", err)
	}
	return &created, nil
}

// FindByAnimalID retrieves an animal by its farm-assigned tag id.
func (r *AnimalRepository) FindByAnimalID(ctx context.Context, animalID string) (*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Animal
	if err := r.col.FindOne(ctx, bson.M{"animal_id": animalID}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("find animal: %w", err)
	}
	return &a, nil
}

// List returns all animals sorted by animal id.
func (r *AnimalRepository) List(ctx context.Context) ([]*domain.Animal, error) {
	return r.findMany(ctx, bson.M{})
}

// Search matches animalId, name, or type, case-insensitively.
func (r *AnimalRepository) Search(ctx context.Context, term string) ([]*domain.Animal, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return r.findMany(ctx, bson.M{"$or": bson.A{
		bson.M{"animal_id": pattern},
		bson.M{"name": pattern},
		bson.M{"type": pattern},
	}})
}

func (r *AnimalRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Animal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "animal_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find animals: %w", err)
	}
	defer cur.Close(ctx)

	var animals []*domain.Animal
	if err := cur.All(ctx, &animals); err != nil {
		return nil, fmt.Errorf("decode animals: %w", err)
	}
	return animals, nil
}

// Count returns the number of livestock records.
func (r *AnimalRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique animal id index.
func (r *AnimalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "animal_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
