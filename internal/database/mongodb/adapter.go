package mongodb

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Adapter struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	a.client = client
	a.dbName = a.extractDBName(url, clientOpts)
	a.database = client.Database(a.dbName)

	return nil
}

func (a *Adapter) extractDBName(url string, opts *options.ClientOptions) string {
	// Parse URL to get database name from the path first
	if len(url) > 0 {
		parts := strings.Split(url, "/")
		if len(parts) > 3 {
			dbPart := parts[len(parts)-1]
			// Remove query parameters if any
			if idx := strings.Index(dbPart, "?"); idx > 0 {
				dbPart = dbPart[:idx]
			}
			if dbPart != "" && dbPart != "admin" {
				return dbPart
			}
		}
	}

	// Fallback to auth source
	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}

	return "test"
}

func (a *Adapter) Close() error {
	if a.client != nil {
		return a.client.Disconnect(context.Background())
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

func (a *Adapter) DatabaseName() string {
	return a.dbName
}

// DropDatabase removes the connected database entirely.
func (a *Adapter) DropDatabase(ctx context.Context) error {
	if a.database == nil {
		return fmt.Errorf("database not connected")
	}
	if err := a.database.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop database %s: %w", a.dbName, err)
	}
	return nil
}

// InsertMany performs an unordered bulk insert so one rejected document does
// not prevent insertion of the others.
func (a *Adapter) InsertMany(ctx context.Context, collection string, documents []bson.M) error {
	if a.database == nil {
		return fmt.Errorf("database not connected")
	}

	docs := make([]interface{}, len(documents))
	for i, d := range documents {
		docs[i] = d
	}

	_, err := a.database.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (a *Adapter) InsertOne(ctx context.Context, collection string, document bson.M) error {
	if a.database == nil {
		return fmt.Errorf("database not connected")
	}

	_, err := a.database.Collection(collection).InsertOne(ctx, document)
	return err
}

// CountDocuments reports the number of documents in a collection.
func (a *Adapter) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if a.database == nil {
		return 0, fmt.Errorf("database not connected")
	}
	return a.database.Collection(collection).CountDocuments(ctx, bson.M{})
}
