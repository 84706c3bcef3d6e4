package wire

import (
	"movie-social/internal/adaptor"
	"movie-social/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	identity *middleware.Identity,
) {
	r.Route("/ratings", func(r chi.Router) {
		r.Use(identity.Authenticate)

		r.Post("/", ratingHandler.Create)
		r.Post("/{movieId}", ratingHandler.Create)
		r.Delete("/", ratingHandler.Delete)
		r.Delete("/{ratingId}", ratingHandler.Delete)
	})
}
