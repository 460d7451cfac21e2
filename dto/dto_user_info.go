package dto

import "go.mongodb.org/mongo-driver/v2/bson"

// UserProfile is the public slice of a user document inlined into joined
// views (comment authors, subscriber lists, video owners).
type UserProfile struct {
	ID       bson.ObjectID `json:"id" bson:"_id"`
	Username string        `json:"username" bson:"username"`
	FullName string        `json:"fullName" bson:"full_name"`
	Avatar   string        `json:"avatarUrl" bson:"avatar"`
}
