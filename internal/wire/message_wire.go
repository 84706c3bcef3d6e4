package wire

import (
	"movie-social/internal/adaptor"
	"movie-social/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireMessage(
	r chi.Router,
	messageHandler *adaptor.MessageHandler,
	identity *middleware.Identity,
) {
	r.Route("/messages", func(r chi.Router) {
		r.Use(identity.Authenticate)

		r.Get("/", messageHandler.List)
		r.Post("/", messageHandler.Create)
		r.Post("/add/message", messageHandler.Create)

		r.Get("/{id}", messageHandler.Get)
		r.Put("/{id}", messageHandler.Update)
		r.Put("/edit/{id}", messageHandler.Update)
		r.Delete("/{id}", messageHandler.Delete)
		r.Delete("/delete/{id}", messageHandler.Delete)
	})
}
