package wire

import (
	"movie-social/internal/adaptor"
	"movie-social/pkg/middleware"
	"movie-social/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	identity *middleware.Identity,
	config *utils.Config,
) {
	r.Route("/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(config.HTTP.AuthRateLimit))

			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/signin", authHandler.Login)
		})

		// ==================== IDENTIFIED ROUTES ====================
		// The handlers answer anonymous callers themselves
		r.Group(func(r chi.Router) {
			r.Use(identity.Identify)

			r.Get("/me", authHandler.Me)
			r.Get("/user", authHandler.Me)
			r.Get("/logout", authHandler.Logout)
			r.Post("/logout", authHandler.Logout)
		})
	})
}
