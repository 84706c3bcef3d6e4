package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-social/internal/data/entity"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix     = "session:"
	sessionUserKeyPrefix = "session_user:"
	gcDiscardRatio       = 0.5
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, id string) (*entity.Session, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) (int, error)
	CleanExpiredSessions(ctx context.Context) (int, error)
	CollectGarbage() error
}

type sessionRepository struct {
	db  *badger.DB
	log *zap.Logger
}

func NewSessionRepository(db *badger.DB, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func sessionKey(id string) []byte {
	return []byte(sessionKeyPrefix + id)
}

func sessionUserKey(userID uuid.UUID, id string) []byte {
	return []byte(sessionUserKeyPrefix + userID.String() + ":" + id)
}

// Create stores the session and its per-user index entry. Both expire with
// the session so a crashed janitor never leaks keys.
func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("create session for user %s: already expired", session.UserID)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.SetEntry(badger.NewEntry(sessionKey(session.ID), data).WithTTL(ttl)); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		entry := badger.NewEntry(sessionUserKey(session.UserID, session.ID), []byte(session.ID)).WithTTL(ttl)
		if err := txn.SetEntry(entry); err != nil {
			return fmt.Errorf("set user mapping: %w", err)
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// FindValidSession returns nil, nil for unknown or expired sessions.
func (r *sessionRepository) FindValidSession(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return nil, nil
	}

	session, err := r.get(id)
	if err != nil {
		r.log.Error("Failed to read session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil || session.IsExpired() {
		return nil, nil
	}

	return session, nil
}

// Revoke deletes the session. Revoking an unknown session is not an error.
func (r *sessionRepository) Revoke(ctx context.Context, id string) error {
	session, err := r.get(id)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if session == nil {
		return nil
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if err := txn.Delete(sessionUserKey(session.UserID, id)); err != nil {
			return fmt.Errorf("delete user mapping: %w", err)
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to revoke session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func (r *sessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	var ids []string

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sessionUserKeyPrefix + userID.String() + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("list sessions of user %s: %w", userID, err)
	}

	revoked := 0
	for _, id := range ids {
		if err := r.Revoke(ctx, id); err != nil {
			r.log.Warn("Failed to revoke user session", zap.Error(err), zap.String("user_id", userID.String()))
			continue
		}
		revoked++
	}

	return revoked, nil
}

// CleanExpiredSessions removes sessions past their expiry that the store
// still holds, returning how many were removed.
func (r *sessionRepository) CleanExpiredSessions(ctx context.Context) (int, error) {
	var expired []string

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			var session entity.Session
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &session)
			}); err != nil {
				r.log.Warn("Skipping unreadable session", zap.Error(err))
				continue
			}
			if session.IsExpired() {
				expired = append(expired, session.ID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}

	removed := 0
	for _, id := range expired {
		if err := r.Revoke(ctx, id); err != nil {
			r.log.Warn("Failed to remove expired session", zap.Error(err))
			continue
		}
		removed++
	}

	return removed, nil
}

// CollectGarbage rewrites value log files until nothing is left to reclaim.
func (r *sessionRepository) CollectGarbage() error {
	for {
		err := r.db.RunValueLogGC(gcDiscardRatio)
		switch {
		case err == nil:
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		default:
			return fmt.Errorf("value log gc: %w", err)
		}
	}
}

func (r *sessionRepository) get(id string) (*entity.Session, error) {
	var session entity.Session

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}
