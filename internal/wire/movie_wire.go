package wire

import (
	"movie-social/internal/adaptor"
	"movie-social/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	identity *middleware.Identity,
) {
	r.Route("/movies", func(r chi.Router) {
		r.Use(identity.Authenticate)

		r.Get("/", movieHandler.List)
		r.Post("/", movieHandler.Create)

		// Static segments are matched before {id}
		r.Get("/top", movieHandler.TopRated)
		r.Get("/top-rated", movieHandler.TopRated)
		r.Get("/me", movieHandler.Seen)
		r.Get("/seen", movieHandler.Seen)

		r.Get("/{id}", movieHandler.Get)
		r.Post("/{id}/seen", movieHandler.MarkSeen)
	})
}
