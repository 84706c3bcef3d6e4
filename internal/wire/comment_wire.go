package wire

import (
	"movie-social/internal/adaptor"
	"movie-social/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	identity *middleware.Identity,
) {
	r.Route("/comments", func(r chi.Router) {
		r.Use(identity.Authenticate)

		r.Get("/{movie_id}", commentHandler.List)
		r.Post("/{movie_id}", commentHandler.Create)
	})
}
