package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	MovieID   string        `bson:"movie_id" json:"movie_id" validate:"required"`
	Content   string        `bson:"content" json:"content" validate:"required"`
	Author    string        `bson:"author" json:"author" validate:"required"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
