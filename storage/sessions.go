package storage

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/models"
)

func (s *Store) InsertSession(ctx context.Context, session models.Session) error {
	_, err := s.Sessions.InsertOne(ctx, session)
	return err
}

// ListSessions returns all sessions sorted by start time, newest first.
func (s *Store) ListSessions(ctx context.Context) ([]models.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startAt", Value: -1}})
	cursor, err := s.Sessions.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) CountSessions(ctx context.Context) (int64, error) {
	return s.Sessions.CountDocuments(ctx, bson.M{})
}

// DeleteSessionCascade removes the session with the given logical id and
// every attempt referencing it. Both deletes run inside a transaction when
// the deployment supports one; against a standalone server they fall back
// to two sequential deletes, which leaves a crash window that can strand
// orphaned attempts. Deleting an id that does not exist is not an error.
func (s *Store) DeleteSessionCascade(ctx context.Context, id int64) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.Sessions.DeleteOne(sc, bson.M{"id": id}); err != nil {
			return nil, err
		}
		if _, err := s.Attempts.DeleteMany(sc, bson.M{"sessionId": id}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil && transactionsUnsupported(err) {
		return s.deleteSessionSequential(ctx, id)
	}
	return err
}

func (s *Store) deleteSessionSequential(ctx context.Context, id int64) error {
	if _, err := s.Sessions.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return err
	}
	_, err := s.Attempts.DeleteMany(ctx, bson.M{"sessionId": id})
	return err
}

func transactionsUnsupported(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 20 { // IllegalOperation
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}
