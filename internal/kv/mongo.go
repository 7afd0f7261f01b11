package kv

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "kv_entries"

type mongoEntry struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

type mongoBackend struct {
	client   *mongo.Client
	database string
}

// NewMongo builds backend storing every key as separate document of kv_entries collection
func NewMongo(client *mongo.Client, database string) Backend {
	return &mongoBackend{client: client, database: database}
}

func (b *mongoBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var e mongoEntry
	if err := b.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e.Value, nil
}

func (b *mongoBackend) Set(ctx context.Context, key string, value []byte) error {
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": bson.M{"value": value}}
	if _, err := b.collection().UpdateOne(ctx, bson.M{"_id": key}, update, opts); err != nil {
		return err
	}
	return nil
}

func (b *mongoBackend) collection() *mongo.Collection {
	return b.client.Database(b.database).Collection(mongoCollection)
}
