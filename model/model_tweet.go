package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Tweet struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID   bson.ObjectID `json:"ownerId" bson:"owner_id"`
	Content   string        `json:"content" bson:"content"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
