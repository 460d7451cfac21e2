package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"vidtube/dto"
)

type VideoRepository struct {
	db *mongo.Database
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{db: db}
}

// ChannelVideosPipeline lists every video owned by owner, newest first, with
// the owner profile inlined and media urls flattened.
func ChannelVideosPipeline(owner bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"owner_id": owner}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         ColUsers,
			KeyLocalField:   "owner_id",
			KeyForeignField: "_id",
			KeyAs:           "owner",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageProject, Value: bson.M{
					"_id":       1,
					"username":  1,
					"full_name": 1,
					"avatar":    "$avatar.url",
				}}},
			},
		}}},
		{{Key: StageUnwind, Value: "$owner"}},
		{{Key: StageAddFields, Value: bson.M{
			"video_file": "$video_file.url",
			"thumbnail":  "$thumbnail.url",
		}}},
		{{Key: StageSort, Value: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
	}
}

func (r *VideoRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.VideoView, error) {
	cur, err := r.db.Collection(ColVideos).Aggregate(ctx, ChannelVideosPipeline(owner))
	if err != nil {
		return nil, errors.Wrap(err, "aggregate channel videos")
	}
	defer cur.Close(ctx)

	videos := []dto.VideoView{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, errors.Wrap(err, "decode channel videos")
	}
	return videos, nil
}
