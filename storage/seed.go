package storage

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"backend/models"
)

var seedPlayers = []struct {
	Name     string
	Password string
}{
	{"alice", "alice123"},
	{"bob", "bob123"},
	{"carol", "carol123"},
	{"dave", "dave123"},
}

var seedRates = []int{72, 85, 60, 91}

// EnsureSeed populates the baseline admin account, the seed players and,
// on a completely empty sessions collection, two upcoming sessions with
// example attempts on the first one. Each step checks for existing data
// before inserting, so re-running on every boot is safe. It is not safe
// against two processes seeding an empty database at the same time; this
// runs once at single-process startup.
func (s *Store) EnsureSeed(ctx context.Context, hash func(string) string) error {
	now := time.Now().UTC()

	if err := s.ensureUser(ctx, "admin", hash("admin123"), true, now); err != nil {
		return err
	}
	for _, p := range seedPlayers {
		if err := s.ensureUser(ctx, p.Name, hash(p.Password), false, now); err != nil {
			return err
		}
	}

	count, err := s.CountSessions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	firstStart := now.Add(24 * time.Hour)
	descriptions := []string{"Practice round", "Qualifier round"}
	starts := []time.Time{firstStart, now.Add(48 * time.Hour)}

	var firstID int64
	for i := range starts {
		id, err := s.NextSequence(ctx, SessionIDKey)
		if err != nil {
			return err
		}
		if i == 0 {
			firstID = id
		}
		err = s.InsertSession(ctx, models.Session{
			ID:          id,
			StartAt:     starts[i],
			Description: descriptions[i],
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}
	}

	for i, p := range seedPlayers {
		err := s.InsertAttempt(ctx, models.Attempt{
			SessionID: firstID,
			UserName:  p.Name,
			Rate:      seedRates[i],
			CreatedAt: firstStart.Add(time.Duration(i+1) * 5 * time.Minute),
		})
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d sessions and %d attempts", len(starts), len(seedPlayers))
	return nil
}

func (s *Store) ensureUser(ctx context.Context, name, keyHash string, isAdmin bool, now time.Time) error {
	count, err := s.Users.CountDocuments(ctx, bson.M{"userName": name})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = s.Users.InsertOne(ctx, models.User{
		UserName:  name,
		IsAdmin:   isAdmin,
		KeyHash:   keyHash,
		CreatedAt: now,
	})
	return err
}
