package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"vidtube/dto"
	"vidtube/model"
)

// LikeStore is what the toggle engine needs from storage. The unique index
// on (target_type, target_id, liked_by) is the real concurrency guard;
// InsertEdge surfaces a duplicate-key violation as dup=true and DeleteEdge
// reports whether a row was actually removed.
type LikeStore interface {
	ResourceExists(ctx context.Context, target model.LikeTarget, id bson.ObjectID) (bool, error)
	EdgeExists(ctx context.Context, target model.LikeTarget, targetID, actor bson.ObjectID) (bool, error)
	InsertEdge(ctx context.Context, edge model.Like) (dup bool, err error)
	DeleteEdge(ctx context.Context, target model.LikeTarget, targetID, actor bson.ObjectID) (removed bool, err error)
	CountEdges(ctx context.Context, target model.LikeTarget, targetID bson.ObjectID) (int64, error)
}

type LikeRepository struct {
	db *mongo.Database
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) likes() *mongo.Collection {
	return r.db.Collection(ColLikes)
}

func edgeFilter(target model.LikeTarget, targetID, actor bson.ObjectID) bson.M {
	return bson.M{
		"target_type": target,
		"target_id":   targetID,
		"liked_by":    actor,
	}
}

func (r *LikeRepository) ResourceExists(ctx context.Context, target model.LikeTarget, id bson.ObjectID) (bool, error) {
	col, ok := target.Collection()
	if !ok {
		return false, errors.Errorf("unknown like target %q", target)
	}
	return docExists(ctx, r.db.Collection(col), id)
}

func (r *LikeRepository) EdgeExists(ctx context.Context, target model.LikeTarget, targetID, actor bson.ObjectID) (bool, error) {
	err := r.likes().FindOne(ctx, edgeFilter(target, targetID, actor),
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "lookup like edge")
	}
	return true, nil
}

// InsertEdge creates the edge. A duplicate-key write (code 11000) means a
// concurrent toggle won the insert; callers must treat that as "already
// liked", not as a failure.
func (r *LikeRepository) InsertEdge(ctx context.Context, edge model.Like) (bool, error) {
	_, err := r.likes().InsertOne(ctx, edge)
	if err == nil {
		return false, nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true, nil
	}
	return false, errors.Wrap(err, "insert like edge")
}

func (r *LikeRepository) DeleteEdge(ctx context.Context, target model.LikeTarget, targetID, actor bson.ObjectID) (bool, error) {
	res, err := r.likes().DeleteOne(ctx, edgeFilter(target, targetID, actor))
	if err != nil {
		return false, errors.Wrap(err, "delete like edge")
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeRepository) CountEdges(ctx context.Context, target model.LikeTarget, targetID bson.ObjectID) (int64, error) {
	n, err := r.likes().CountDocuments(ctx, bson.M{
		"target_type": target,
		"target_id":   targetID,
	})
	if err != nil {
		return 0, errors.Wrap(err, "count like edges")
	}
	return n, nil
}

// LikedVideosPipeline joins an actor's video likes onto the videos
// collection, inlining the owner profile and flattening media urls. Likes
// are walked in creation order so the result is deterministic.
func LikedVideosPipeline(actor bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{
			"liked_by":    actor,
			"target_type": model.TargetVideo,
		}}},
		{{Key: StageSort, Value: bson.D{
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         ColVideos,
			KeyLocalField:   "target_id",
			KeyForeignField: "_id",
			KeyAs:           "video",
			KeyPipeline: mongo.Pipeline{
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
				{{Key: StageUnwind, Value: bson.M{"path": "$owner", "preserveNullAndEmptyArrays": true}}},
				{{Key: StageAddFields, Value: bson.M{
					"video_file": "$video_file.url",
					"thumbnail":  "$thumbnail.url",
				}}},
			},
		}}},
		{{Key: StageUnwind, Value: "$video"}},
		{{Key: StageReplaceRoot, Value: bson.M{"newRoot": "$video"}}},
	}
}

func (r *LikeRepository) LikedVideos(ctx context.Context, actor bson.ObjectID) ([]dto.VideoView, error) {
	cur, err := r.likes().Aggregate(ctx, LikedVideosPipeline(actor))
	if err != nil {
		return nil, errors.Wrap(err, "aggregate liked videos")
	}
	defer cur.Close(ctx)

	videos := []dto.VideoView{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, errors.Wrap(err, "decode liked videos")
	}
	return videos, nil
}
