package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EmailKindContact           = "contact"
	EmailKindOrderConfirmation = "order_confirmation"

	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailRecord is one outbound delivery attempt, sent or failed. Written after
// every attempt so the operator can reconcile stored records against what
// actually went out.
type EmailRecord struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Recipient string             `json:"recipient" bson:"recipient"`
	Subject   string             `json:"subject" bson:"subject"`
	Kind      string             `json:"kind" bson:"kind"`
	Status    string             `json:"status" bson:"status"`
	Error     string             `json:"error,omitempty" bson:"error,omitempty"`
	MessageID string             `json:"message_id,omitempty" bson:"message_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
