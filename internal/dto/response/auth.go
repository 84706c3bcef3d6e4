package response

import (
	"time"

	"movie-social/internal/data/entity"
)

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileResponse is the current user with the messages they sent.
type ProfileResponse struct {
	UserResponse
	Messages []*entity.Message `json:"messages"`
}

// LoginResult carries what a successful login produced: the bearer token and
// the server-side session to bind to the cookie.
type LoginResult struct {
	Token   string
	Session *entity.Session
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
