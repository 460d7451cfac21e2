package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription is a directed edge: subscriber follows channel. One per
// (channel_id, subscriber_id), enforced by a unique index.
type Subscription struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	ChannelID    bson.ObjectID `json:"channelId" bson:"channel_id"`
	SubscriberID bson.ObjectID `json:"subscriberId" bson:"subscriber_id"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
}
