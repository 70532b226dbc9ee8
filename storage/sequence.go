package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/models"
)

// SessionIDKey is the counter document key for session identifiers.
const SessionIDKey = "sessionId"

// NextSequence atomically increments the named counter and returns the
// post-increment value. The upsert creates the counter on first use, so
// the first call returns 1. The whole increment-and-fetch is a single
// FindOneAndUpdate, which is what guarantees no two callers ever see the
// same value.
func (s *Store) NextSequence(ctx context.Context, key string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := s.Counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}
