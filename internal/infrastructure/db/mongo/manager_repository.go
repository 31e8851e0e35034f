package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmops/farm-api/internal/core/domain"
)

const collectionManagers = "managers"

type ManagerRepository struct {
	col *mongo.Collection
}

func NewManagerRepository(db *mongo.Database) *ManagerRepository {
	return &ManagerRepository{col: db.Collection(collectionManagers)}
}

type mongoManager struct {
	ID           string `bson:"_id"`
	Username     string `bson:"username"`
	FullName     string `bson:"full_name"`
	Contact      string `bson:"contact"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	CreatedAt    int64  `bson:"created_at"`
}

// Create inserts a new manager account. The document id is generated here so
// the returned record is complete without a read-back.
func (r *ManagerRepository) Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoManager{
		ID:           primitive.NewObjectID().Hex(),
		Username:     m.Username,
		FullName:     m.FullName,
		Contact:      m.Contact,
		PasswordHash: m.PasswordHash,
		Role:         string(m.Role),
		CreatedAt:    m.CreatedAt.Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert manager: %w", err)
	}

	created := *m
	created.ID = doc.ID
	return &created, nil
}

// FindByUsername retrieves a manager account by its unique username.
func (r *ManagerRepository) FindByUsername(ctx context.Context, username string) (*domain.Manager, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByID retrieves a manager account by document id.
func (r *ManagerRepository) FindByID(ctx context.Context, id string) (*domain.Manager, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ManagerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Manager, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mm mongoManager
	if err := r.col.FindOne(ctx, filter).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find manager: %w", err)
	}
	return mm.toDomain(), nil
}

func (mm mongoManager) toDomain() *domain.Manager {
	return &domain.Manager{
		ID:           mm.ID,
		Username:     mm.Username,
		FullName:     mm.FullName,
		Contact:      mm.Contact,
		PasswordHash: mm.PasswordHash,
		Role:         domain.Role(mm.Role),
		CreatedAt:    unixToTime(mm.CreatedAt),
	}
}

// EnsureIndexes creates the unique username index on the managers collection.
func (r *ManagerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
