package repository

import (
	"context"
	"fmt"
	"time"

	"movie-social/internal/data/entity"
	"movie-social/pkg/database"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.Comment, error)
}

type commentRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewCommentRepository(db *mongo.Database, log *zap.Logger) CommentRepository {
	return &commentRepository{
		coll: db.Collection(database.CommentsCollection),
		log:  log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if err := validateDocument(comment); err != nil {
		return err
	}

	comment.ID = bson.NewObjectID()
	comment.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("movie_id", comment.MovieID),
		)
		return fmt.Errorf("create comment for movie %s: %w", comment.MovieID, err)
	}

	return nil
}

// FindByMovieID lists a movie's comments oldest first; none yields an empty slice.
func (r *commentRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Comment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"movie_id": movieID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		r.log.Error("Failed to find comments", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("find comments for movie %s: %w", movieID, err)
	}

	comments := make([]*entity.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		r.log.Error("Failed to decode comments", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("decode comments for movie %s: %w", movieID, err)
	}

	return comments, nil
}
