package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"vidtube/dto"
	"vidtube/model"
)

type DashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// videoTotals is the group output of the owner's videos: how many, total
// views, and the ids needed to scope the like/comment counts.
type videoTotals struct {
	TotalVideos int64           `bson:"total_videos"`
	TotalViews  int64           `bson:"total_views"`
	VideoIDs    []bson.ObjectID `bson:"video_ids"`
}

// ChannelStats derives every dashboard number from current documents: one
// aggregation over the owner's videos, then scoped counts over the edge and
// tweet collections. Subscriber count matches edges pointing at the channel
// (channel_id), subscribed-to count matches edges the channel created
// (subscriber_id); the two directions are never mixed.
func (r *DashboardRepository) ChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error) {
	var stats dto.ChannelStats

	totals, err := r.videoTotals(ctx, owner)
	if err != nil {
		return stats, err
	}
	stats.TotalVideos = totals.TotalVideos
	stats.TotalViews = totals.TotalViews

	if len(totals.VideoIDs) > 0 {
		stats.TotalLikes, err = r.count(ctx, ColLikes, bson.M{
			"target_type": model.TargetVideo,
			"target_id":   bson.M{"$in": totals.VideoIDs},
		})
		if err != nil {
			return stats, err
		}
		stats.TotalComments, err = r.count(ctx, ColComments, bson.M{
			"video_id": bson.M{"$in": totals.VideoIDs},
		})
		if err != nil {
			return stats, err
		}
	}

	stats.Subscribers, err = r.count(ctx, ColSubscriptions, bson.M{"channel_id": owner})
	if err != nil {
		return stats, err
	}
	stats.SubscribedTo, err = r.count(ctx, ColSubscriptions, bson.M{"subscriber_id": owner})
	if err != nil {
		return stats, err
	}
	stats.TotalTweets, err = r.count(ctx, ColTweets, bson.M{"owner_id": owner})
	if err != nil {
		return stats, err
	}
	return stats, nil
}

func (r *DashboardRepository) videoTotals(ctx context.Context, owner bson.ObjectID) (videoTotals, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"owner_id": owner}}},
		{{Key: StageGroup, Value: bson.M{
			"_id":          nil,
			"total_videos": bson.M{"$sum": 1},
			"total_views":  bson.M{"$sum": "$views"},
			"video_ids":    bson.M{"$push": "$_id"},
		}}},
	}

	cur, err := r.db.Collection(ColVideos).Aggregate(ctx, pipe)
	if err != nil {
		return videoTotals{}, errors.Wrap(err, "aggregate video totals")
	}
	defer cur.Close(ctx)

	var rows []videoTotals
	if err := cur.All(ctx, &rows); err != nil {
		return videoTotals{}, errors.Wrap(err, "decode video totals")
	}
	if len(rows) == 0 {
		// channel with no videos yet
		return videoTotals{}, nil
	}
	return rows[0], nil
}

func (r *DashboardRepository) count(ctx context.Context, col string, filter bson.M) (int64, error) {
	n, err := r.db.Collection(col).CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrapf(err, "count %s", col)
	}
	return n, nil
}
