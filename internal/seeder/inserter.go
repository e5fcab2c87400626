package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BatchInserter writes fully formed documents resiliently: one unordered
// bulk insert first, degrading to one-at-a-time inserts that skip
// duplicate-key rejections when the bulk call fails outright. Any storage
// error that is not a duplicate aborts the run.
type BatchInserter struct {
	store DocumentStore
}

func NewBatchInserter(store DocumentStore) *BatchInserter {
	return &BatchInserter{store: store}
}

// InsertBatch returns exactly the documents that were persisted, each still
// carrying its preassigned _id, so callers can build accurate identifier
// pools.
func (b *BatchInserter) InsertBatch(ctx context.Context, collection string, docs []bson.M) ([]bson.M, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	err := b.store.InsertMany(ctx, collection, docs)
	if err == nil {
		return docs, nil
	}

	// Per-document failures inside an unordered bulk leave the rest of the
	// batch inserted; drop the rejected documents from the result instead of
	// retrying them.
	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) {
		failed := make(map[int]bool, len(bulkErr.WriteErrors))
		for _, writeErr := range bulkErr.WriteErrors {
			if !isDuplicateWriteError(writeErr.WriteError) {
				return nil, fmt.Errorf("bulk insert into %s failed: %s", collection, writeErr.Message)
			}
			failed[writeErr.Index] = true
		}
		inserted := make([]bson.M, 0, len(docs)-len(failed))
		for i, doc := range docs {
			if !failed[i] {
				inserted = append(inserted, doc)
			}
		}
		return inserted, nil
	}

	color.Yellow("⚠️  Bulk insert failed for %s, inserting one-by-one: %v", collection, err)

	inserted := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		if err := b.store.InsertOne(ctx, collection, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// Expected when re-running against seeded data
				continue
			}
			return inserted, fmt.Errorf("failed to insert into %s: %w", collection, err)
		}
		inserted = append(inserted, doc)
	}

	return inserted, nil
}

func isDuplicateWriteError(writeErr mongo.WriteError) bool {
	return writeErr.Code == 11000 || strings.Contains(writeErr.Message, "E11000")
}
