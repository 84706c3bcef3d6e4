package entity

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	MinMovieRating = 0
	MaxMovieRating = 5
	TopRatedLimit  = 10
)

type Movie struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string        `bson:"title" json:"title" validate:"required"`
	Description string        `bson:"description" json:"description" validate:"required"`
	Rating      float64       `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	// SeenBy holds the ids of users who marked the movie as seen.
	SeenBy []string `bson:"seenBy" json:"seenBy"`
}
