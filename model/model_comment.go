package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	VideoID   bson.ObjectID `json:"videoId" bson:"video_id"`
	OwnerID   bson.ObjectID `json:"ownerId" bson:"owner_id"`
	Content   string        `json:"content" bson:"content"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
