package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-social/internal/data/entity"
	"movie-social/pkg/database"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	FindTopRated(ctx context.Context, limit int) ([]*entity.Movie, error)
	FindSeenBy(ctx context.Context, userID string) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	MarkSeen(ctx context.Context, id, userID string) (*entity.Movie, error)
}

type movieRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMovieRepository(db *mongo.Database, log *zap.Logger) MovieRepository {
	return &movieRepository{
		coll: db.Collection(database.MoviesCollection),
		log:  log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if err := validateDocument(movie); err != nil {
		return err
	}

	movie.ID = bson.NewObjectID()
	if movie.SeenBy == nil {
		movie.SeenBy = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, movie); err != nil {
		r.log.Error("Failed to create movie", zap.Error(err), zap.String("title", movie.Title))
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit)).SetSkip(int64(offset))
	}
	return r.find(ctx, bson.M{}, opts, "all")
}

// FindTopRated returns the highest rated movies first.
func (r *movieRepository) FindTopRated(ctx context.Context, limit int) ([]*entity.Movie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts, "top-rated")
}

func (r *movieRepository) FindSeenBy(ctx context.Context, userID string) ([]*entity.Movie, error) {
	return r.find(ctx, bson.M{"seenBy": userID}, options.Find(), "seen")
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	var movie entity.Movie
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID", zap.Error(err), zap.String("movie_id", id))
		return nil, fmt.Errorf("find movie %s: %w", id, err)
	}

	return &movie, nil
}

// MarkSeen adds userID to seenBy once and returns the updated movie.
func (r *movieRepository) MarkSeen(ctx context.Context, id, userID string) (*entity.Movie, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("mark movie %s seen: %w", id, ErrNotFound)
	}

	update := bson.M{"$addToSet": bson.M{"seenBy": userID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var movie entity.Movie
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("mark movie %s seen: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to mark movie seen",
			zap.Error(err),
			zap.String("movie_id", id),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("mark movie %s seen: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder, kind string) ([]*entity.Movie, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err), zap.String("query", kind))
		return nil, fmt.Errorf("find %s movies: %w", kind, err)
	}

	movies := make([]*entity.Movie, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		r.log.Error("Failed to decode movies", zap.Error(err), zap.String("query", kind))
		return nil, fmt.Errorf("decode %s movies: %w", kind, err)
	}

	return movies, nil
}
