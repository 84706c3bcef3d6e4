package usecase

import (
	"context"

	"movie-social/internal/dto/request"
	"movie-social/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.SignupRequest) error
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.LoginResult, error)
}

type userService struct {
	creds *credentials
	log   *zap.Logger
}

func NewUserService(creds *credentials, log *zap.Logger) UserService {
	return &userService{
		creds: creds,
		log:   log.With(zap.String("service", "user")),
	}
}

func (us *userService) Register(ctx context.Context, req *request.SignupRequest) error {
	_, err := us.creds.register(ctx, req.Username, req.Email, req.Password)
	return err
}

// Login issues a token with flat id/email claims.
func (us *userService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.LoginResult, error) {
	return us.creds.login(ctx, req.Email, req.Password, client, flatToken)
}
