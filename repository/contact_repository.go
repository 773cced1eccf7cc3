package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidRecord marks a document rejected by collection-level required
// field validation, before any write is attempted.
var ErrInvalidRecord = errors.New("invalid record")

// ContactRepository defines data access for contact submissions.
type ContactRepository interface {
	Insert(ctx context.Context, sub *models.ContactSubmission) (*models.ContactSubmission, error)
	List(ctx context.Context, page, perPage int) ([]*models.ContactSubmission, int64, error)
}

// MongoContactRepository implements ContactRepository over a Mongo collection.
type MongoContactRepository struct {
	collection *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{collection: db.Collection("contacts")}
}

func (r *MongoContactRepository) Insert(ctx context.Context, sub *models.ContactSubmission) (*models.ContactSubmission, error) {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, err)
	}

	res, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("insert contact submission: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}
	return sub, nil
}

func (r *MongoContactRepository) List(ctx context.Context, page, perPage int) ([]*models.ContactSubmission, int64, error) {
	return listNewestFirst[models.ContactSubmission](ctx, r.collection, page, perPage)
}

// listNewestFirst pages a collection by descending creation time.
func listNewestFirst[T any](ctx context.Context, coll *mongo.Collection, page, perPage int) ([]*T, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))

	cursor, err := coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("find documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode documents: %w", err)
	}
	return docs, total, nil
}
