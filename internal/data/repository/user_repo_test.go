package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-social/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userColumns = []string{"id", "username", "email", "password", "created_at", "updated_at"}

func newUserRepo(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock, zap.NewNop()), mock
}

func sampleUser() *entity.User {
	now := time.Now().UTC()
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$hash",
	}
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newUserRepo(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	repo, mock := newUserRepo(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_CreateFailure(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), sampleUser())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mock := newUserRepo(t)
	user := sampleUser()

	mock.ExpectQuery("SELECT id, username, email, password, created_at, updated_at").
		WithArgs(user.Email).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt))

	found, err := repo.FindByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByIDMissing(t *testing.T) {
	repo, mock := newUserRepo(t)
	id := uuid.New()

	mock.ExpectQuery("FROM users").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userColumns))

	found, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo, mock := newUserRepo(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET password").
		WithArgs(id, "newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.UpdatePassword(context.Background(), id, "newhash"))

	mock.ExpectExec("UPDATE users SET password").
		WithArgs(id, "newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.UpdatePassword(context.Background(), id, "newhash"), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
