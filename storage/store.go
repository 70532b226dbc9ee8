package storage

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds the Mongo client and the collection handles the service
// works with. It is constructed once at startup and passed to every
// controller; Close releases the client on shutdown.
type Store struct {
	client *mongo.Client

	Users    *mongo.Collection
	Sessions *mongo.Collection
	Attempts *mongo.Collection
	Counters *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	log.Printf("Connected to MongoDB, database %q", dbName)

	return &Store{
		client:   client,
		Users:    db.Collection("users"),
		Sessions: db.Collection("sessions"),
		Attempts: db.Collection("attempts"),
		Counters: db.Collection("counters"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
