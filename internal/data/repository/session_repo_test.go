package repository

import (
	"context"
	"testing"
	"time"

	"movie-social/internal/data/entity"
	"movie-social/pkg/database"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionRepo(t *testing.T) (SessionRepository, *badger.DB) {
	t.Helper()
	kv, err := database.InitBadger("")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return NewSessionRepository(kv, zap.NewNop()), kv
}

func newSession(id string, userID uuid.UUID, ttl time.Duration) *entity.Session {
	now := time.Now().UTC()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		Email:     "jane@example.com",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()
	session := newSession("s1", uuid.New(), time.Hour)

	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindValidSession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.UserID, found.UserID)
	assert.Equal(t, "jane@example.com", found.Email)

	missing, err := repo.FindValidSession(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	empty, err := repo.FindValidSession(ctx, "")
	assert.NoError(t, err)
	assert.Nil(t, empty)
}

func TestSessionRepository_CreateExpired(t *testing.T) {
	repo, _ := newSessionRepo(t)
	assert.Error(t, repo.Create(context.Background(), newSession("s1", uuid.New(), -time.Minute)))
}

func TestSessionRepository_Revoke(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("s1", uuid.New(), time.Hour)))
	require.NoError(t, repo.Revoke(ctx, "s1"))

	found, err := repo.FindValidSession(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, found)

	assert.NoError(t, repo.Revoke(ctx, "s1"))
}

func TestSessionRepository_RevokeAllUserSessions(t *testing.T) {
	repo, _ := newSessionRepo(t)
	ctx := context.Background()
	jane, john := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, newSession("a", jane, time.Hour)))
	require.NoError(t, repo.Create(ctx, newSession("b", jane, time.Hour)))
	require.NoError(t, repo.Create(ctx, newSession("c", john, time.Hour)))

	revoked, err := repo.RevokeAllUserSessions(ctx, jane)
	require.NoError(t, err)
	assert.Equal(t, 2, revoked)

	kept, err := repo.FindValidSession(ctx, "c")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestSessionRepository_CleanExpiredSessions(t *testing.T) {
	repo, kv := newSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("live", uuid.New(), time.Hour)))

	// An entry whose recorded expiry has passed while the key TTL has not
	stale := newSession("stale", uuid.New(), -time.Minute)
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, kv.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(sessionKey(stale.ID), data).WithTTL(time.Hour))
	}))

	found, err := repo.FindValidSession(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, found)

	removed, err := repo.CleanExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	live, err := repo.FindValidSession(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, live)
}

func TestSessionRepository_CollectGarbageInMemory(t *testing.T) {
	repo, _ := newSessionRepo(t)
	assert.NoError(t, repo.CollectGarbage())
}
