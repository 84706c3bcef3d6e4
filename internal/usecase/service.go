package usecase

import (
	"movie-social/internal/data/repository"
	"movie-social/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Profile ProfileService
	Message MessageService
	Movie   MovieService
	Rating  RatingService
	Comment CommentService

	// Tokens verifies bearer tokens for the auth middleware.
	Tokens *utils.TokenManager
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	tokens := utils.NewTokenManager(config.JWT)
	creds := newCredentials(repo, tokens, config.Session, log)

	return &Service{
		Auth:    NewAuthService(repo, creds, log),
		User:    NewUserService(creds, log),
		Profile: NewProfileService(repo, log),
		Message: NewMessageService(repo.Message, log),
		Movie:   NewMovieService(repo.Movie, log),
		Rating:  NewRatingService(repo.Rating, log),
		Comment: NewCommentService(repo.Comment, log),
		Tokens:  tokens,
	}
}
