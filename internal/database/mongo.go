// internal/database/mongo.go
package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"pallet-returns-dashboard/config"
)

const defaultConnectTimeout = 10 * time.Second

// Connect opens the single MongoDB client the process uses for its whole
// lifetime and verifies it with a ping. The caller owns the client and must
// Disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetRetryWrites(true).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}
	return client, nil
}

// ReturnsCollection returns the collection holding return requests.
func ReturnsCollection(client *mongo.Client, cfg config.MongoConfig) *mongo.Collection {
	return client.Database(cfg.DBName).Collection(cfg.Collection)
}

// EnsureIndexes creates the orderId index. With unique set, a second record
// carrying the same orderId is rejected by the server with a duplicate key error.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection, unique bool) error {
	name := "orderId_1"
	if unique {
		name = "orderId_unique"
	}
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetName(name).SetUnique(unique),
	})
	if err != nil {
		return errors.Wrapf(err, "create index %s", name)
	}
	return nil
}
