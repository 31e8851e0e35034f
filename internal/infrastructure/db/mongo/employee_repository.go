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
	"github.com/farmops/farm-api/internal/core/ports"
)

const collectionEmployees = "employees"

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

type mongoEmployee struct {
	ID           string  `bson:"_id"`
	EmployeeID   string  `bson:"employee_id"`
	Name         string  `bson:"name"`
	Gender       string  `bson:"gender"`
	Contact      string  `bson:"contact"`
	Salary       float64 `bson:"salary"`
	Username     string  `bson:"username"`
	PasswordHash string  `bson:"password_hash"`
	Role         string  `bson:"role"`
	ManagerID    string  `bson:"manager_id"`
	CreatedAt    int64   `bson:"created_at"`
}

// Create inserts a new employee account.
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEmployee{
		ID:           primitive.NewObjectID().Hex(),
		EmployeeID:   e.EmployeeID,
		Name:         e.Name,
		Gender:       e.Gender,
		Contact:      e.Contact,
		Salary:       e.Salary,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		ManagerID:    e.ManagerID,
		CreatedAt:    e.CreatedAt.Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmployeeExists
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *e
	created.ID = doc.ID
	return &created, nil
}

// FindByUsername retrieves an employee account by its unique username.
func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByID retrieves an employee account by document id.
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *EmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEmployee
	if err := r.col.FindOne(ctx, filter).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return me.toDomain(), nil
}

// List returns all employees sorted by employee id.
func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	return r.findMany(ctx, bson.M{})
}

// Search matches employeeId or name, case-insensitively.
func (r *EmployeeRepository) Search(ctx context.Context, term string) ([]*domain.Employee, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return r.findMany(ctx, bson.M{"$or": bson.A{
		bson.M{"employee_id": pattern},
		bson.M{"name": pattern},
	}})
}

func (r *EmployeeRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoEmployee
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]*domain.Employee, 0, len(docs))
	for _, me := range docs {
		employees = append(employees, me.toDomain())
	}
	return employees, nil
}

// Update sets the mutable fields and returns the updated record.
func (r *EmployeeRepository) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":    input.Name,
		"gender":  input.Gender,
		"contact": input.Contact,
		"salary":  input.Salary,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var me mongoEmployee
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return me.toDomain(), nil
}

// Delete removes the employee record. Outstanding tokens for the account die
// with it: the auth middleware re-resolves the subject on every request.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// LastEmployeeID returns the highest assigned employee id, or "" when none
// exist yet.
func (r *EmployeeRepository) LastEmployeeID(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "employee_id", Value: -1}})

	var me mongoEmployee
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("last employee id: %w", err)
	}
	return me.EmployeeID, nil
}

// Count returns the number of employee records.
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (me mongoEmployee) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:           me.ID,
		EmployeeID:   me.EmployeeID,
		Name:         me.Name,
		Gender:       me.Gender,
		Contact:      me.Contact,
		Salary:       me.Salary,
		Username:     me.Username,
		PasswordHash: me.PasswordHash,
		Role:         domain.Role(me.Role),
		ManagerID:    me.ManagerID,
		CreatedAt:    unixToTime(me.CreatedAt),
	}
}

// EnsureIndexes creates the unique username and employee id indexes.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
