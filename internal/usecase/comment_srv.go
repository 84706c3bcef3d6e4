package usecase

import (
	"context"
	"fmt"

	"movie-social/internal/data/entity"
	"movie-social/internal/data/repository"
	"movie-social/internal/dto/request"

	"go.uber.org/zap"
)

type CommentService interface {
	ListByMovie(ctx context.Context, movieID string) ([]*entity.Comment, error)
	Create(ctx context.Context, req *request.CreateCommentRequest) (*entity.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	log      *zap.Logger
}

func NewCommentService(comments repository.CommentRepository, log *zap.Logger) CommentService {
	return &commentService{
		comments: comments,
		log:      log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) ListByMovie(ctx context.Context, movieID string) ([]*entity.Comment, error) {
	comments, err := s.comments.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Create(ctx context.Context, req *request.CreateCommentRequest) (*entity.Comment, error) {
	comment := &entity.Comment{
		MovieID: req.MovieID,
		Content: req.Content,
		Author:  req.Author,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return comment, nil
}
