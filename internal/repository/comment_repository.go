package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"vidtube/dto"
	"vidtube/model"
)

type CommentRepository struct {
	db *mongo.Database
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) comments() *mongo.Collection {
	return r.db.Collection(ColComments)
}

func (r *CommentRepository) VideoExists(ctx context.Context, videoID bson.ObjectID) (bool, error) {
	return docExists(ctx, r.db.Collection(ColVideos), videoID)
}

func (r *CommentRepository) Create(ctx context.Context, videoID, owner bson.ObjectID, content string) (*model.Comment, error) {
	now := time.Now().UTC()
	com := model.Comment{
		ID:        bson.NewObjectID(),
		VideoID:   videoID,
		OwnerID:   owner,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.comments().InsertOne(ctx, com); err != nil {
		return nil, errors.Wrap(err, "insert comment")
	}
	return &com, nil
}

// GetByID returns nil without error when the comment does not exist.
func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var com model.Comment
	err := r.comments().FindOne(ctx, bson.M{"_id": id}).Decode(&com)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find comment")
	}
	return &com, nil
}

// UpdateContent replaces the content of the comment if owner authored it.
// A nil result with nil error means the owner filter did not match.
func (r *CommentRepository) UpdateContent(ctx context.Context, id, owner bson.ObjectID, content string) (*model.Comment, error) {
	var updated model.Comment
	err := r.comments().FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner_id": owner},
		bson.M{"$set": bson.M{
			"content":    content,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "update comment")
	}
	return &updated, nil
}

// Delete removes the comment if owner authored it and reports whether a
// document was actually deleted.
func (r *CommentRepository) Delete(ctx context.Context, id, owner bson.ObjectID) (bool, error) {
	res, err := r.comments().DeleteOne(ctx, bson.M{"_id": id, "owner_id": owner})
	if err != nil {
		return false, errors.Wrap(err, "delete comment")
	}
	return res.DeletedCount > 0, nil
}

// CommentListPipeline builds the paginated comments-with-author view for one
// video: newest first, author profile inlined, skip/limit from a 1-based
// page number.
func CommentListPipeline(videoID bson.ObjectID, page, limit int64) mongo.Pipeline {
	skip := (page - 1) * limit
	return mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"video_id": videoID}}},
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
		{{Key: StageAddFields, Value: bson.M{
			"owner": bson.M{"$first": "$owner"},
		}}},
		{{Key: StageSort, Value: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		{{Key: StageSkip, Value: skip}},
		{{Key: StageLimit, Value: limit}},
	}
}

// ListByVideo returns one page of the video's comments plus the total count
// across all pages. An out-of-range page is an empty slice, not an error.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int64) ([]dto.CommentView, int64, error) {
	total, err := r.comments().CountDocuments(ctx, bson.M{"video_id": videoID})
	if err != nil {
		return nil, 0, errors.Wrap(err, "count comments")
	}

	cur, err := r.comments().Aggregate(ctx, CommentListPipeline(videoID, page, limit))
	if err != nil {
		return nil, 0, errors.Wrap(err, "aggregate comments")
	}
	defer cur.Close(ctx)

	items := []dto.CommentView{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, errors.Wrap(err, "decode comments")
	}
	return items, total, nil
}
