package repository

import (
	"context"
	"fmt"
	"time"

	"storefront-service/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EmailLogRepository records outbound delivery attempts.
type EmailLogRepository interface {
	Save(ctx context.Context, rec *models.EmailRecord) error
}

// MongoEmailLogRepository implements EmailLogRepository over a Mongo collection.
type MongoEmailLogRepository struct {
	collection *mongo.Collection
}

func NewMongoEmailLogRepository(db *mongo.Database) *MongoEmailLogRepository {
	return &MongoEmailLogRepository{collection: db.Collection("email_log")}
}

func (r *MongoEmailLogRepository) Save(ctx context.Context, rec *models.EmailRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert email record: %w", err)
	}
	return nil
}
