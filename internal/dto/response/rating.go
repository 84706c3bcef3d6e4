package response

import (
	"time"

	"movie-social/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	MovieID   string    `json:"movie_id"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingCreatedResponse struct {
	Message string         `json:"message"`
	Rating  RatingResponse `json:"rating"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	resp := RatingResponse{
		ID:        rating.ID.String(),
		Rating:    rating.Rating,
		MovieID:   rating.MovieID,
		CreatedAt: rating.CreatedAt,
	}
	if rating.UserID != nil {
		userID := rating.UserID.String()
		resp.UserID = &userID
	}
	return resp
}
