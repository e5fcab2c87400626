package seeder

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentStore is the only storage surface the seeding engine depends on:
// given a collection and documents, insert them. InsertMany must be
// unordered so one rejected document does not block the rest of the batch.
type DocumentStore interface {
	InsertMany(ctx context.Context, collection string, documents []bson.M) error
	InsertOne(ctx context.Context, collection string, document bson.M) error
}

// IdentifierPool maps an entity name to the identifiers successfully
// inserted for it during the current run. It grows monotonically and lives
// only for one run.
type IdentifierPool map[string][]primitive.ObjectID
