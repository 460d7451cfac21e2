package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// VideoView flattens the nested media documents down to plain urls and
// inlines the owner's public profile.
type VideoView struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	Title     string        `json:"title" bson:"title"`
	Views     int64         `json:"views" bson:"views"`
	VideoFile string        `json:"videoFileUrl" bson:"video_file"`
	Thumbnail string        `json:"thumbnailUrl" bson:"thumbnail"`
	Owner     UserProfile   `json:"owner" bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
