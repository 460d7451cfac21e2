package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeTarget is the closed set of resources a like edge can point at.
type LikeTarget string

const (
	TargetVideo   LikeTarget = "video"
	TargetComment LikeTarget = "comment"
	TargetTweet   LikeTarget = "tweet"
)

// likeTargetCollections maps each target kind to the collection holding the
// resource itself, so existence checks never dispatch on a type name.
var likeTargetCollections = map[LikeTarget]string{
	TargetVideo:   "videos",
	TargetComment: "comments",
	TargetTweet:   "tweets",
}

// Collection returns the collection the target kind's documents live in,
// and false for a kind outside the closed set.
func (t LikeTarget) Collection() (string, bool) {
	col, ok := likeTargetCollections[t]
	return col, ok
}

func (t LikeTarget) Valid() bool {
	_, ok := likeTargetCollections[t]
	return ok
}

// Like is an edge document: one per (target_type, target_id, liked_by),
// enforced by a unique index.
type Like struct {
	ID         bson.ObjectID `json:"id" bson:"_id,omitempty"`
	TargetType LikeTarget    `json:"targetType" bson:"target_type"`
	TargetID   bson.ObjectID `json:"targetId" bson:"target_id"`
	LikedBy    bson.ObjectID `json:"likedBy" bson:"liked_by"`
	CreatedAt  time.Time     `json:"createdAt" bson:"created_at"`
}
