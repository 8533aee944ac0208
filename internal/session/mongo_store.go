package session

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const sessionsCollection = "sessions"

// MongoStore persists session records in a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and returns a store bound to the
// sessions collection of the named database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(sessionsCollection),
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert writes one complete record.
func (s *MongoStore) Insert(ctx context.Context, record SessionRecord) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert session record: %w", err)
	}
	return nil
}

// FindByUser returns up to limit records for the user in natural order.
func (s *MongoStore) FindByUser(ctx context.Context, userID string, limit int) ([]SessionRecord, error) {
	opts := options.Find().SetLimit(int64(limit))
	return s.find(ctx, userID, opts)
}

// FindRecentByUser returns up to limit records sorted newest first.
func (s *MongoStore) FindRecentByUser(ctx context.Context, userID string, limit int) ([]SessionRecord, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, userID, opts)
}

func (s *MongoStore) find(ctx context.Context, userID string, opts *options.FindOptions) ([]SessionRecord, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find session records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []SessionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode session records: %w", err)
	}
	return records, nil
}
