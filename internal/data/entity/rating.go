package entity

import "github.com/google/uuid"

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	BaseSimple
	Rating  int        `db:"rating"`
	MovieID string     `db:"movie_id"`
	UserID  *uuid.UUID `db:"user_id"`
}
