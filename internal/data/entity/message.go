package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Message struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content     string        `bson:"content" json:"content" validate:"required"`
	RecipientID string        `bson:"recipientId" json:"recipientId" validate:"required"`
	SenderID    string        `bson:"senderId,omitempty" json:"senderId,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
