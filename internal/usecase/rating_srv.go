package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-social/internal/data/entity"
	"movie-social/internal/data/repository"
	"movie-social/internal/dto/request"
	"movie-social/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateRatingRequest) (*entity.Rating, error)
	Delete(ctx context.Context, ratingID string) error
}

type ratingService struct {
	ratings repository.RatingRepository
	log     *zap.Logger
}

func NewRatingService(ratings repository.RatingRepository, log *zap.Logger) RatingService {
	return &ratingService{
		ratings: ratings,
		log:     log.With(zap.String("service", "rating")),
	}
}

// Create stores the rating, recording userID as its author when known.
func (s *ratingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateRatingRequest) (*entity.Rating, error) {
	if req.Rating < entity.MinRating || req.Rating > entity.MaxRating {
		return nil, ErrRatingOutOfRange
	}

	rating := &entity.Rating{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now().UTC(),
		},
		Rating:  req.Rating,
		MovieID: req.MovieID,
	}
	if userID != uuid.Nil {
		rating.UserID = &userID
	}

	stored, err := s.ratings.Create(ctx, rating)
	if err != nil {
		return nil, fmt.Errorf("add rating: %w", err)
	}

	s.log.Info("Rating added",
		zap.String("rating_id", stored.ID.String()),
		zap.String("movie_id", stored.MovieID),
		zap.Int("rating", stored.Rating))

	return stored, nil
}

func (s *ratingService) Delete(ctx context.Context, ratingID string) error {
	id, ok := utils.ParseUUID(ratingID)
	if !ok {
		return ErrRatingNotFound
	}

	err := s.ratings.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrRatingNotFound
	}
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	return nil
}
