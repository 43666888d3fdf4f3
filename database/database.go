package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// Short timeouts so a down database degrades request latency instead of
// hanging callers while the fallback chain takes over.
const serverTimeout = 1 * time.Second

// FindOptions carries the subset of query options the repositories use,
// kept driver-agnostic so test fakes stay simple.
type FindOptions struct {
	Sort  bson.D
	Limit int64
}

// Collection is the document-store access surface injected into each
// repository. The mongo-backed implementation lives below; tests
// substitute an in-memory fake.
type Collection interface {
	Find(ctx context.Context, filter any, opts FindOptions, results any) error
	FindOne(ctx context.Context, filter any, result any) error
	InsertOne(ctx context.Context, doc any) error
	UpdateOne(ctx context.Context, filter any, update any) (matched int64, err error)
	ReplaceOne(ctx context.Context, filter any, doc any) (matched int64, err error)
	UpsertOne(ctx context.Context, filter any, doc any) error
	DeleteOne(ctx context.Context, filter any) (deleted int64, err error)
	Count(ctx context.Context, filter any) (int64, error)
}

// Connect initializes the MongoDB connection. An unreachable database is
// not fatal: the ping failure is logged and requests fall back to seed
// files and defaults until the store comes back.
func Connect() {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "wolfterm_db"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(serverTimeout).
		SetConnectTimeout(serverTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("Warning: MongoDB unreachable at startup, serving from fallbacks: %v", err)
	} else {
		log.Println("Successfully connected and pinged MongoDB.")
	}

	mongoClient = client
	mongoDB = client.Database(dbName)
}

// GetCollection returns collection access for the named collection.
func GetCollection(name string) Collection {
	return &mongoCollection{coll: mongoDB.Collection(name)}
}

// Disconnect closes the MongoDB connection on graceful shutdown.
func Disconnect() {
	if mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting MongoDB: %v", err)
			return
		}
		log.Println("MongoDB connection closed.")
	}
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (m *mongoCollection) Find(ctx context.Context, filter any, fo FindOptions, results any) error {
	opts := options.Find()
	if fo.Sort != nil {
		opts.SetSort(fo.Sort)
	}
	if fo.Limit > 0 {
		opts.SetLimit(fo.Limit)
	}
	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func (m *mongoCollection) FindOne(ctx context.Context, filter any, result any) error {
	return m.coll.FindOne(ctx, filter).Decode(result)
}

func (m *mongoCollection) InsertOne(ctx context.Context, doc any) error {
	_, err := m.coll.InsertOne(ctx, doc)
	return err
}

func (m *mongoCollection) UpdateOne(ctx context.Context, filter any, update any) (int64, error) {
	res, err := m.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *mongoCollection) ReplaceOne(ctx context.Context, filter any, doc any) (int64, error) {
	res, err := m.coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *mongoCollection) UpsertOne(ctx context.Context, filter any, doc any) error {
	opts := options.Update().SetUpsert(true)
	_, err := m.coll.UpdateOne(ctx, filter, bson.M{"$set": doc}, opts)
	return err
}

func (m *mongoCollection) DeleteOne(ctx context.Context, filter any) (int64, error) {
	res, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *mongoCollection) Count(ctx context.Context, filter any) (int64, error) {
	return m.coll.CountDocuments(ctx, filter)
}
