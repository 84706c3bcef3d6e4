package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-social/internal/data/entity"
	"movie-social/pkg/database"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Message, error)
	FindByID(ctx context.Context, id string) (*entity.Message, error)
	FindBySender(ctx context.Context, senderID string) ([]*entity.Message, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Message, error)
	Delete(ctx context.Context, id string) error
}

type messageRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMessageRepository(db *mongo.Database, log *zap.Logger) MessageRepository {
	return &messageRepository{
		coll: db.Collection(database.MessagesCollection),
		log:  log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	if err := validateDocument(message); err != nil {
		return err
	}

	now := time.Now().UTC()
	message.ID = bson.NewObjectID()
	message.CreatedAt = now
	message.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, message); err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("recipient_id", message.RecipientID),
		)
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

func (r *messageRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit)).SetSkip(int64(offset))
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find messages", zap.Error(err))
		return nil, fmt.Errorf("find messages: %w", err)
	}

	messages := make([]*entity.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		r.log.Error("Failed to decode messages", zap.Error(err))
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id string) (*entity.Message, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	var message entity.Message
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&message)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find message by ID", zap.Error(err), zap.String("message_id", id))
		return nil, fmt.Errorf("find message %s: %w", id, err)
	}

	return &message, nil
}

func (r *messageRepository) FindBySender(ctx context.Context, senderID string) ([]*entity.Message, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"senderId": senderID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		r.log.Error("Failed to find messages by sender", zap.Error(err), zap.String("sender_id", senderID))
		return nil, fmt.Errorf("find messages by sender %s: %w", senderID, err)
	}

	messages := make([]*entity.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode messages by sender %s: %w", senderID, err)
	}

	return messages, nil
}

// UpdateContent replaces the content and returns the updated document.
func (r *messageRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Message, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, fmt.Errorf("update message %s: %w", id, ErrNotFound)
	}

	update := bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var message entity.Message
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&message)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update message %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update message", zap.Error(err), zap.String("message_id", id))
		return nil, fmt.Errorf("update message %s: %w", id, err)
	}

	return &message, nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return fmt.Errorf("delete message %s: %w", id, ErrNotFound)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Error("Failed to delete message", zap.Error(err), zap.String("message_id", id))
		return fmt.Errorf("delete message %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("delete message %s: %w", id, ErrNotFound)
	}

	return nil
}
