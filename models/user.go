package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserName  string             `bson:"userName" json:"userName"`
	IsAdmin   bool               `bson:"isAdmin" json:"isAdmin"`
	KeyHash   string             `bson:"keyHash" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
