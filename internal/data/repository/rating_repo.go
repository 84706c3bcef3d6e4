package repository

import (
	"context"
	"fmt"

	"movie-social/internal/data/entity"
	"movie-social/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) (*entity.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

// Create inserts the rating and returns the stored row.
func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	query := `
		INSERT INTO ratings (id, rating, movie_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, rating, movie_id, user_id, created_at
	`

	var stored entity.Rating
	err := r.db.QueryRow(ctx, query,
		rating.ID,
		rating.Rating,
		rating.MovieID,
		rating.UserID,
		rating.CreatedAt,
	).Scan(
		&stored.ID,
		&stored.Rating,
		&stored.MovieID,
		&stored.UserID,
		&stored.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("movie_id", rating.MovieID),
			zap.Int("rating", rating.Rating),
		)
		return nil, fmt.Errorf("create rating for movie %s: %w", rating.MovieID, err)
	}

	return &stored, nil
}

func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ratings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rating",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return fmt.Errorf("delete rating %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete rating %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Rating deleted", zap.String("rating_id", id.String()))
	return nil
}
