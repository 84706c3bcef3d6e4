package middleware

import (
	"context"
	"net/http"
	"strings"

	"movie-social/internal/data/repository"
	"movie-social/pkg/utils"

	"go.uber.org/zap"
)

// Identity resolves the caller from the session cookie first and the bearer
// token second.
type Identity struct {
	sessions   repository.SessionRepository
	tokens     *utils.TokenManager
	cookieName string
	log        *zap.Logger
}

func NewIdentity(
	sessions repository.SessionRepository,
	tokens *utils.TokenManager,
	cookieName string,
	logger *zap.Logger,
) *Identity {
	return &Identity{
		sessions:   sessions,
		tokens:     tokens,
		cookieName: cookieName,
		log:        logger.With(zap.String("middleware", "auth")),
	}
}

// Authenticate rejects callers without a valid session or token.
func (i *Identity) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, ok, err := i.resolve(r)
		if err != nil {
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		if !ok {
			utils.ResponseUnauthorized(w, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Identify attaches the caller when there is one and lets anonymous requests through.
func (i *Identity) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _, err := i.resolve(r)
		if err != nil {
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (i *Identity) resolve(r *http.Request) (context.Context, bool, error) {
	ctx := r.Context()

	if cookie, err := r.Cookie(i.cookieName); err == nil && cookie.Value != "" {
		session, err := i.sessions.FindValidSession(ctx, cookie.Value)
		if err != nil {
			i.log.Error("Failed to validate session", zap.Error(err))
			return ctx, false, err
		}
		if session != nil {
			ctx = utils.SetUserContext(ctx, session.UserID)
			ctx = utils.SetSessionContext(ctx, session.ID)
			return ctx, true, nil
		}
		i.log.Debug("Invalid or expired session cookie")
	}

	token, ok := bearerToken(r)
	if !ok {
		return ctx, false, nil
	}

	claims, err := i.tokens.ValidateToken(token)
	if err != nil {
		i.log.Warn("Rejected bearer token", zap.Error(err))
		return ctx, false, nil
	}

	userID, _, ok := claims.Identity()
	if !ok {
		i.log.Warn("Bearer token without a user id")
		return ctx, false, nil
	}

	return utils.SetUserContext(ctx, userID), true, nil
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
