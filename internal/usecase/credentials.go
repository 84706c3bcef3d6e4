package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-social/internal/data/entity"
	"movie-social/internal/data/repository"
	"movie-social/internal/dto/response"
	"movie-social/pkg/utils"

	"go.uber.org/zap"
)

// ClientInfo describes the caller a session is opened for.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// tokenStyle selects the claim layout of an issued token.
type tokenStyle int

const (
	nestedToken tokenStyle = iota
	flatToken
)

// credentials holds the registration and login steps shared by /auth and /users.
type credentials struct {
	repo       *repository.Repository
	tokens     *utils.TokenManager
	sessionTTL time.Duration
	log        *zap.Logger
}

func newCredentials(
	repo *repository.Repository,
	tokens *utils.TokenManager,
	config utils.SessionConfig,
	log *zap.Logger,
) *credentials {
	ttl := config.TTL()
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &credentials{
		repo:       repo,
		tokens:     tokens,
		sessionTTL: ttl,
		log:        log.With(zap.String("service", "credentials")),
	}
}

// register hashes the password and stores the user.
func (c *credentials) register(ctx context.Context, username, email, password string) (*entity.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		c.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := c.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	c.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return user, nil
}

// login verifies the password, opens a session and signs a token.
func (c *credentials) login(ctx context.Context, email, password string, client ClientInfo, style tokenStyle) (*response.LoginResult, error) {
	user, err := c.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		c.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		c.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// Sign first: a login that cannot issue a token must not leave a session behind
	var token string
	if style == flatToken {
		token, err = c.tokens.GenerateFlatToken(user.ID, user.Email)
	} else {
		token, err = c.tokens.GenerateToken(user.ID, user.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	session, err := c.openSession(ctx, user, client)
	if err != nil {
		return nil, err
	}

	c.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.LoginResult{Token: token, Session: session}, nil
}

func (c *credentials) openSession(ctx context.Context, user *entity.User, client ClientInfo) (*entity.Session, error) {
	id, err := utils.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		Email:     user.Email,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(c.sessionTTL),
	}

	if err := c.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	return session, nil
}
