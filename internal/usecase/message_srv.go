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

type MessageService interface {
	Create(ctx context.Context, senderID string, req *request.CreateMessageRequest) (*entity.Message, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Message, error)
	Get(ctx context.Context, id string) (*entity.Message, error)
	Update(ctx context.Context, id string, req *request.UpdateMessageRequest) (*entity.Message, error)
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	messages repository.MessageRepository
	log      *zap.Logger
}

func NewMessageService(messages repository.MessageRepository, log *zap.Logger) MessageService {
	return &messageService{
		messages: messages,
		log:      log.With(zap.String("service", "message")),
	}
}

func (s *messageService) Create(ctx context.Context, senderID string, req *request.CreateMessageRequest) (*entity.Message, error) {
	message := &entity.Message{
		Content:     req.Content,
		RecipientID: req.RecipientID,
		SenderID:    senderID,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	return message, nil
}

func (s *messageService) List(ctx context.Context, limit, offset int) ([]*entity.Message, error) {
	messages, err := s.messages.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) Get(ctx context.Context, id string) (*entity.Message, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	return message, nil
}

func (s *messageService) Update(ctx context.Context, id string, req *request.UpdateMessageRequest) (*entity.Message, error) {
	message, err := s.messages.UpdateContent(ctx, id, req.Content)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	return message, nil
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	err := s.messages.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMessageNotFound
	}
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
