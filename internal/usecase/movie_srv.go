package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-social/internal/data/entity"
	"movie-social/internal/data/repository"
	"movie-social/internal/dto/request"

	"go.uber.org/zap"
)

type MovieService interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Movie, error)
	TopRated(ctx context.Context) ([]*entity.Movie, error)
	Seen(ctx context.Context, userID string) ([]*entity.Movie, error)
	Get(ctx context.Context, id string) (*entity.Movie, error)
	Create(ctx context.Context, req *request.CreateMovieRequest) (*entity.Movie, error)
	MarkSeen(ctx context.Context, id, userID string) (*entity.Movie, error)
}

type movieService struct {
	movies repository.MovieRepository
	log    *zap.Logger
}

func NewMovieService(movies repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) List(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	movies, err := s.movies.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) TopRated(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.movies.FindTopRated(ctx, entity.TopRatedLimit)
	if err != nil {
		return nil, fmt.Errorf("list top-rated movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) Seen(ctx context.Context, userID string) ([]*entity.Movie, error) {
	movies, err := s.movies.FindSeenBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list seen movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) Get(ctx context.Context, id string) (*entity.Movie, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

func (s *movieService) Create(ctx context.Context, req *request.CreateMovieRequest) (*entity.Movie, error) {
	if req.Rating < entity.MinMovieRating || req.Rating > entity.MaxMovieRating {
		return nil, ErrMovieRatingOutOfRange
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
		SeenBy:      []string{},
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}
	return movie, nil
}

func (s *movieService) MarkSeen(ctx context.Context, id, userID string) (*entity.Movie, error) {
	movie, err := s.movies.MarkSeen(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mark movie seen: %w", err)
	}
	return movie, nil
}
