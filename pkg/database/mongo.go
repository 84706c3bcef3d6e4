package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"movie-social/pkg/utils"
)

// Collection names of the document store
const (
	MessagesCollection = "messages"
	MoviesCollection   = "movies"
	CommentsCollection = "comments"
)

// Mongo wraps the client and the application database
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Ping implements a readiness check against the primary
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// InitMongo connects, pings and makes sure the secondary indexes exist.
func InitMongo(config utils.MongoConfig) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(10).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	m := &Mongo{Client: client, Database: client.Database(config.Database)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	if err := EnsureIndexes(ctx, m.Database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return m, nil
}

// EnsureIndexes creates the lookup indexes the repositories filter on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		field      string
		order      int
	}{
		{MessagesCollection, "senderId", 1},
		{MoviesCollection, "rating", -1},
		{MoviesCollection, "seenBy", 1},
		{CommentsCollection, "movie_id", 1},
	}

	for _, idx := range indexes {
		model := mongo.IndexModel{Keys: bson.D{{Key: idx.field, Value: idx.order}}}
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index %s.%s: %w", idx.collection, idx.field, err)
		}
	}
	return nil
}
