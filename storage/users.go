package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"backend/models"
)

// FindUserByKeyHash selects a user by the hash of the presented password.
// Login carries no userName, so if two users share a password the store
// returns an arbitrary one of them; known limitation of the password-only
// login flow.
func (s *Store) FindUserByKeyHash(ctx context.Context, keyHash string, isAdmin bool) (models.User, error) {
	var user models.User
	err := s.Users.FindOne(ctx, bson.M{"keyHash": keyHash, "isAdmin": isAdmin}).Decode(&user)
	return user, err
}

func (s *Store) UserExists(ctx context.Context, userName string) (bool, error) {
	count, err := s.Users.CountDocuments(ctx, bson.M{"userName": userName})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertUser(ctx context.Context, user models.User) error {
	_, err := s.Users.InsertOne(ctx, user)
	return err
}
