package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line of a checkout order, stored exactly as submitted.
type OrderItem struct {
	ProductID string `json:"productId" bson:"product_id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// CheckoutOrder is one stored checkout. TotalAmount is taken from the caller
// as-is; the service never recomputes it from the items.
type CheckoutOrder struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Address     string             `json:"address" bson:"address"`
	City        string             `json:"city" bson:"city"`
	State       string             `json:"state,omitempty" bson:"state,omitempty"`
	Country     string             `json:"country" bson:"country"`
	Zip         string             `json:"zip" bson:"zip"`
	Items       []OrderItem        `json:"items" bson:"items"`
	TotalAmount float64            `json:"totalAmount" bson:"total_amount"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// Validate enforces the collection's required fields before a write.
// State is optional.
func (o *CheckoutOrder) Validate() error {
	required := []struct {
		field, value string
	}{
		{"name", o.Name},
		{"email", o.Email},
		{"address", o.Address},
		{"city", o.City},
		{"country", o.Country},
		{"zip", o.Zip},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.field)
		}
	}
	return nil
}

// CheckoutRequest is the POST /api/checkout payload. No binding constraints:
// the handler forwards whatever arrives and the repository's document
// validation decides acceptance.
type CheckoutRequest struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Zip         string      `json:"zip"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}
