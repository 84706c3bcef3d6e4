package wire

import (
	"movie-social/internal/adaptor"
	"movie-social/pkg/middleware"
	"movie-social/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.RateLimit(config.HTTP.AuthRateLimit))

		r.Post("/register", userHandler.Register) // POST /users/register
		r.Post("/login", userHandler.Login)       // POST /users/login
	})
}
