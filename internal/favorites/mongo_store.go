package favorites

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const favoritesCollection = "favorite_matches"

type favoriteDoc struct {
	ID int `bson:"_id"`
}

// MongoStore persists favorite ids in a mongo collection, one document per
// id. Upsert/delete keep both operations idempotent.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to mongo and returns a store backed by the
// favorite_matches collection of dbName.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	if uri == "" || dbName == "" {
		return nil, fmt.Errorf("mongo uri and database name are required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(dbName).Collection(favoritesCollection),
	}, nil
}

// SavedIDs reads the full id set from the collection.
func (s *MongoStore) SavedIDs(ctx context.Context) (map[int]struct{}, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("fetching favorite ids: %w", err)
	}

	var docs []favoriteDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding favorite ids: %w", err)
	}

	ids := make(map[int]struct{}, len(docs))
	for _, doc := range docs {
		ids[doc.ID] = struct{}{}
	}
	return ids, nil
}

// Save upserts the id document.
func (s *MongoStore) Save(ctx context.Context, id int) error {
	filter := bson.D{{Key: "_id", Value: id}}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, filter, favoriteDoc{ID: id}, opts); err != nil {
		return fmt.Errorf("saving favorite id %d: %w", id, err)
	}
	return nil
}

// Delete removes the id document. Deleting an absent id is a no-op.
func (s *MongoStore) Delete(ctx context.Context, id int) error {
	filter := bson.D{{Key: "_id", Value: id}}
	if _, err := s.collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("deleting favorite id %d: %w", id, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
