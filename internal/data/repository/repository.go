package repository

import (
	"movie-social/pkg/database"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// Repository groups the accessors of all three stores: Postgres for users and
// ratings, Mongo for documents, Badger for sessions.
type Repository struct {
	User    UserRepository
	Rating  RatingRepository
	Message MessageRepository
	Movie   MovieRepository
	Comment CommentRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, docs *mongo.Database, kv *badger.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Rating:  NewRatingRepository(db, log),
		Message: NewMessageRepository(docs, log),
		Movie:   NewMovieRepository(docs, log),
		Comment: NewCommentRepository(docs, log),
		Session: NewSessionRepository(kv, log),
	}
}
