package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Video struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID   bson.ObjectID `json:"ownerId" bson:"owner_id"`
	Title     string        `json:"title" bson:"title"`
	Views     int64         `json:"views" bson:"views"`
	VideoFile MediaFile     `json:"videoFile" bson:"video_file"`
	Thumbnail MediaFile     `json:"thumbnail" bson:"thumbnail"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
