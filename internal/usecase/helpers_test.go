package usecase

import (
	"testing"

	"movie-social/internal/data/repository"
	"movie-social/internal/data/repository/mocks"
	"movie-social/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type repoMocks struct {
	user    *mocks.MockUserRepository
	rating  *mocks.MockRatingRepository
	message *mocks.MockMessageRepository
	movie   *mocks.MockMovieRepository
	comment *mocks.MockCommentRepository
	session *mocks.MockSessionRepository
}

func newRepoMocks() (*repository.Repository, *repoMocks) {
	m := &repoMocks{
		user:    new(mocks.MockUserRepository),
		rating:  new(mocks.MockRatingRepository),
		message: new(mocks.MockMessageRepository),
		movie:   new(mocks.MockMovieRepository),
		comment: new(mocks.MockCommentRepository),
		session: new(mocks.MockSessionRepository),
	}
	return &repository.Repository{
		User:    m.user,
		Rating:  m.rating,
		Message: m.message,
		Movie:   m.movie,
		Comment: m.comment,
		Session: m.session,
	}, m
}

func (m *repoMocks) assertExpectations(t *testing.T) {
	m.user.AssertExpectations(t)
	m.rating.AssertExpectations(t)
	m.message.AssertExpectations(t)
	m.movie.AssertExpectations(t)
	m.comment.AssertExpectations(t)
	m.session.AssertExpectations(t)
}

func testConfig(secret string) *utils.Config {
	return &utils.Config{
		JWT:     utils.JWTConfig{Secret: secret, ExpiryHours: 1},
		Session: utils.SessionConfig{TTLHours: 24},
	}
}

func newTestService(t *testing.T, secret string) (*Service, *repoMocks) {
	t.Helper()
	repo, m := newRepoMocks()
	t.Cleanup(func() { m.assertExpectations(t) })
	return NewService(repo, testConfig(secret), zap.NewNop()), m
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}
