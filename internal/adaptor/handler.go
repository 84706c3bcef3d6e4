package adaptor

import (
	"net/http"

	"movie-social/internal/usecase"
	"movie-social/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Profile *ProfileHandler
	Message *MessageHandler
	Movie   *MovieHandler
	Rating  *RatingHandler
	Comment *CommentHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, checks map[string]Pinger, log *zap.Logger) *Handler {
	cookie := NewSessionCookie(config.Session)

	return &Handler{
		Auth:    NewAuthHandler(service.Auth, cookie, log),
		User:    NewUserHandler(service.User, cookie, log),
		Profile: NewProfileHandler(service.Profile, cookie, log),
		Message: NewMessageHandler(service.Message, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Rating:  NewRatingHandler(service.Rating, log),
		Comment: NewCommentHandler(service.Comment, log),
		Health:  NewHealthHandler(checks, log),
	}
}

// internalError answers 500 with {"error": message}.
func internalError(message string) func(http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		utils.ResponseInternalError(w, message)
	}
}

// internalMessage answers 500 with {"message": message}.
func internalMessage(message string) func(http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		utils.ResponseMessage(w, http.StatusInternalServerError, message)
	}
}

func clientInfo(r *http.Request) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}
