package usecase

import "errors"

// Errors the handlers translate into client responses. Anything else is a
// storage or runtime failure.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("email or password don't match")
	ErrSamePassword       = errors.New("new password cannot be the same as old password")
	ErrIncorrectPassword  = errors.New("incorrect old password")
	ErrNoActiveSession    = errors.New("no active session")

	ErrMessageNotFound = errors.New("message not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrRatingNotFound  = errors.New("rating not found")

	ErrRatingOutOfRange      = errors.New("rating must be between 1 and 5")
	ErrMovieRatingOutOfRange = errors.New("rating must be between 0 and 5")
)
