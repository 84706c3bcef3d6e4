package request

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Rating      float64 `json:"rating"`
}

// CreateRatingRequest is the body of POST /ratings. MovieID may instead come
// from the path.
type CreateRatingRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	MovieID string `json:"movieId" validate:"required"`
}

type DeleteRatingRequest struct {
	RatingID string `json:"ratingId" validate:"required"`
}

type CreateCommentRequest struct {
	MovieID string `json:"-" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}
