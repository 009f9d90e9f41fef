// repositories/store_repository.go
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection keys of the persistent store.
const (
	KeyProviders  = "providers"
	KeyCategories = "categories"
	KeyFavorites  = "favorites"
)

// Store is the key-value blob contract of the persistent store: one
// serialized blob per logical collection name, rewritten whole on every
// mutation. There is no transactionality across keys.
type Store interface {
	// Load returns the blob for key, or found == false when absent.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save rewrites the blob for key.
	Save(ctx context.Context, key string, blob []byte) error
}

type storeDocument struct {
	Key       string            `bson:"_id"`
	Data      primitive.Binary  `bson:"data"`
	UpdatedAt time.Time         `bson:"updatedAt"`
}

// MongoStore keeps each collection blob as a single document in the
// "store" collection, keyed by collection name.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a store over the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection("store")}
}

func (s *MongoStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var doc storeDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Data.Data, true, nil
}

func (s *MongoStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, storeDocument{
		Key:       key,
		Data:      primitive.Binary{Data: blob},
		UpdatedAt: time.Now(),
	}, options.Replace().SetUpsert(true))
	return err
}
