package usecase

import (
	"context"
	"fmt"

	"movie-social/internal/data/repository"
	"movie-social/internal/dto/request"
	"movie-social/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	repo  *repository.Repository
	creds *credentials
	log   *zap.Logger
}

func NewAuthService(repo *repository.Repository, creds *credentials, log *zap.Logger) AuthService {
	return &authService{
		repo:  repo,
		creds: creds,
		log:   log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	user, err := s.creds.register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.LoginResult, error) {
	return s.creds.login(ctx, req.Email, req.Password, client, nestedToken)
}

// Me loads the caller along with the messages they sent.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	messages, err := s.repo.Message.FindBySender(ctx, user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("get user messages: %w", err)
	}

	return &response.ProfileResponse{
		UserResponse: response.UserToResponse(user),
		Messages:     messages,
	}, nil
}

// Logout revokes the session if there is one. It never fails the caller.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.repo.Session.Revoke(ctx, sessionID); err != nil {
		s.log.Warn("Failed to revoke session on logout", zap.Error(err))
	}
	return nil
}
