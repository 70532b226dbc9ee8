package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/models"
)

func (s *Store) InsertAttempt(ctx context.Context, attempt models.Attempt) error {
	_, err := s.Attempts.InsertOne(ctx, attempt)
	return err
}

// ListAttempts returns one user's attempts for a session, newest first.
func (s *Store) ListAttempts(ctx context.Context, sessionID int64, userName string) ([]models.Attempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.Attempts.Find(ctx, bson.M{"sessionId": sessionID, "userName": userName}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	attempts := []models.Attempt{}
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

// LeaderboardRow is one user's best rate for a session.
type LeaderboardRow struct {
	UserName string `bson:"_id"`
	Rate     int    `bson:"rate"`
}

// BestRates groups a session's attempts by user and keeps each user's
// maximum rate. Ordering and ranking happen in the caller.
func (s *Store) BestRates(ctx context.Context, sessionID int64) ([]LeaderboardRow, error) {
	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "sessionId", Value: sessionID}}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$userName"},
		{Key: "rate", Value: bson.D{{Key: "$max", Value: "$rate"}}},
	}}}

	cursor, err := s.Attempts.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []LeaderboardRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
