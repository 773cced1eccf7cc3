package repository

import (
	"context"
	"fmt"
	"time"

	"storefront-service/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository defines data access for checkout orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.CheckoutOrder) (*models.CheckoutOrder, error)
	List(ctx context.Context, page, perPage int) ([]*models.CheckoutOrder, int64, error)
}

// MongoOrderRepository implements OrderRepository over a Mongo collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

// Insert persists an order exactly as submitted. Required-field enforcement
// happens here, not at the handler, so a short payload is rejected the same
// way a schema-constrained collection would reject it.
func (r *MongoOrderRepository) Insert(ctx context.Context, order *models.CheckoutOrder) (*models.CheckoutOrder, error) {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, err)
	}

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert checkout order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return order, nil
}

func (r *MongoOrderRepository) List(ctx context.Context, page, perPage int) ([]*models.CheckoutOrder, int64, error) {
	return listNewestFirst[models.CheckoutOrder](ctx, r.collection, page, perPage)
}
