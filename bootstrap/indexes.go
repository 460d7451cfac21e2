// Package bootstrap creates the indexes the toggle engine's correctness
// depends on. Runs once at startup before the server accepts traffic.
package bootstrap

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes builds the unique edge indexes and the comment listing
// index. The unique indexes are not an optimization: duplicate-key failures
// on them are how concurrent toggles are resolved.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	likeIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "target_type", Value: 1},
			{Key: "target_id", Value: 1},
			{Key: "liked_by", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_like_edge"),
	}
	if _, err := db.Collection("likes").Indexes().CreateOne(ctx, likeIdx); err != nil {
		return errors.Wrap(err, "create likes index")
	}

	subIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "channel_id", Value: 1},
			{Key: "subscriber_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_subscription_edge"),
	}
	if _, err := db.Collection("subscriptions").Indexes().CreateOne(ctx, subIdx); err != nil {
		return errors.Wrap(err, "create subscriptions index")
	}

	commentIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "video_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("comments_by_video"),
	}
	if _, err := db.Collection("comments").Indexes().CreateOne(ctx, commentIdx); err != nil {
		return errors.Wrap(err, "create comments index")
	}

	return nil
}
