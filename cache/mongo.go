package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCollection holds cached routes inside the configured database.
const mongoCollection = "routes"

// MongoCache stores one document per entry, keyed by _id.
type MongoCache struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

// NewMongoCache connects to uri and uses database db.
func NewMongoCache(ctx context.Context, uri, db string) (*MongoCache, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("cache: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("cache: mongo ping: %w", err)
	}

	return &MongoCache{
		client: client,
		coll:   client.Database(db).Collection(mongoCollection),
	}, nil
}

// Get returns a live entry; expired documents are removed on read.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e mongoEntry
	err := c.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if expired(e.ExpiresAt) {
		return nil, false, c.Delete(ctx, key)
	}

	return e.Data, true, nil
}

// Set upserts the entry document.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	_, err := c.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		mongoEntry{Key: key, Data: data, ExpiresAt: expiry(ttl)},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the entry document.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	_, err := c.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Close disconnects the client.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

var _ Cache = (*MongoCache)(nil)
