package wire

import (
	"movie-social/internal/adaptor"
	"movie-social/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	identity *middleware.Identity,
) {
	r.Route("/profile", func(r chi.Router) {
		r.Use(identity.Authenticate)

		r.Put("/", profileHandler.ChangePassword)
		r.Put("/password", profileHandler.ChangePassword)
		r.Post("/", profileHandler.Logout)
		r.Delete("/logout", profileHandler.Logout)
	})
}
