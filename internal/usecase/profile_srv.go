package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-social/internal/data/repository"
	"movie-social/internal/dto/request"
	"movie-social/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	Logout(ctx context.Context, sessionID string) error
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if req.OldPassword == req.NewPassword {
		return ErrSamePassword
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		s.log.Warn("Incorrect old password", zap.String("user_id", userID.String()))
		return ErrIncorrectPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrIncorrectPassword
		}
		return fmt.Errorf("update password: %w", err)
	}

	// The new password is already stored, so a failed revocation only gets logged
	revoked, err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to revoke sessions after password change",
			zap.Error(err),
			zap.String("user_id", userID.String()))
	}

	s.log.Info("Password updated",
		zap.String("user_id", userID.String()),
		zap.Int("sessions_revoked", revoked))
	return nil
}

// Logout ends the session the caller authenticated with. Bearer-only callers
// have nothing to end.
func (s *profileService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoActiveSession
	}

	session, err := s.repo.Session.FindValidSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return ErrNoActiveSession
	}

	if err := s.repo.Session.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Session ended", zap.String("user_id", session.UserID.String()))
	return nil
}
