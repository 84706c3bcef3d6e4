package middleware

import (
	"net/http"
	"time"

	"movie-social/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per client IP per minute. A non-positive limit disables it.
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseError(w, http.StatusTooManyRequests, "Too many requests")
		}),
	)
}
