package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session.ID is the logical identifier issued by the sequence allocator.
// It is the value clients see and reference; the Mongo _id stays internal.
type Session struct {
	ObjectID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          int64              `bson:"id" json:"id"`
	StartAt     time.Time          `bson:"startAt" json:"-"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"-"`
}

type Attempt struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID int64              `bson:"sessionId" json:"sessionId"`
	UserName  string             `bson:"userName" json:"userName"`
	Rate      int                `bson:"rate" json:"rate"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
}

// Counter is a singleton-per-key document backing the sequence allocator.
type Counter struct {
	Key string `bson:"_id"`
	Seq int64  `bson:"seq"`
}
