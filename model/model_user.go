package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MediaFile is how uploaded assets are stored: the CDN url plus the
// provider-side id needed to delete the asset later.
type MediaFile struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"publicId" bson:"public_id"`
}

type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string        `json:"username" bson:"username"`
	FullName  string        `json:"fullName" bson:"full_name"`
	Avatar    MediaFile     `json:"avatar" bson:"avatar"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
