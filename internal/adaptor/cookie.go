package adaptor

import (
	"net/http"
	"time"

	"movie-social/internal/data/entity"
	"movie-social/pkg/utils"
)

// SessionCookie writes and expires the HttpOnly cookie carrying the session id.
type SessionCookie struct {
	Name   string
	Path   string
	Secure bool
}

func NewSessionCookie(config utils.SessionConfig) SessionCookie {
	name := config.CookieName
	if name == "" {
		name = "sid"
	}
	return SessionCookie{Name: name, Path: "/", Secure: config.Secure}
}

func (c SessionCookie) Set(w http.ResponseWriter, session *entity.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    session.ID,
		Path:     c.Path,
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     c.Path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
