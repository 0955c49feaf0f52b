package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sparklenest/cleaning-bookings/pkg/config"
)

// Collection names. The email log is append-only; bookings and quotes are
// the two entity collections.
const (
	CollBookings  = "bookings"
	CollQuotes    = "quotes"
	CollEmailLogs = "email_logs"
)

// Connect dials MongoDB and verifies the connection before returning the
// database handle. The handle is passed to repositories explicitly; nothing
// reaches for a package-level client.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize))

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	return client.Database(cfg.Database), nil
}

// EnsureIndexes declares the descending createdAt index each collection is
// listed by. CreateOne is a no-op when the index already exists, so this is
// safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}

	for _, name := range []string{CollBookings, CollQuotes, CollEmailLogs} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
