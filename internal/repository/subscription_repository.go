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

// SubscriptionStore mirrors LikeStore for the channel/subscriber edge. The
// unique index on (channel_id, subscriber_id) backs the same
// duplicate-as-existing, no-row-delete-as-no-op contract.
type SubscriptionStore interface {
	ChannelExists(ctx context.Context, channelID bson.ObjectID) (bool, error)
	EdgeExists(ctx context.Context, channelID, subscriberID bson.ObjectID) (bool, error)
	InsertEdge(ctx context.Context, edge model.Subscription) (dup bool, err error)
	DeleteEdge(ctx context.Context, channelID, subscriberID bson.ObjectID) (removed bool, err error)
	CountSubscribers(ctx context.Context, channelID bson.ObjectID) (int64, error)
}

type SubscriptionRepository struct {
	db *mongo.Database
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) subs() *mongo.Collection {
	return r.db.Collection(ColSubscriptions)
}

func subFilter(channelID, subscriberID bson.ObjectID) bson.M {
	return bson.M{"channel_id": channelID, "subscriber_id": subscriberID}
}

func (r *SubscriptionRepository) ChannelExists(ctx context.Context, channelID bson.ObjectID) (bool, error) {
	return docExists(ctx, r.db.Collection(ColUsers), channelID)
}

func (r *SubscriptionRepository) EdgeExists(ctx context.Context, channelID, subscriberID bson.ObjectID) (bool, error) {
	err := r.subs().FindOne(ctx, subFilter(channelID, subscriberID),
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "lookup subscription edge")
	}
	return true, nil
}

func (r *SubscriptionRepository) InsertEdge(ctx context.Context, edge model.Subscription) (bool, error) {
	_, err := r.subs().InsertOne(ctx, edge)
	if err == nil {
		return false, nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true, nil
	}
	return false, errors.Wrap(err, "insert subscription edge")
}

func (r *SubscriptionRepository) DeleteEdge(ctx context.Context, channelID, subscriberID bson.ObjectID) (bool, error) {
	res, err := r.subs().DeleteOne(ctx, subFilter(channelID, subscriberID))
	if err != nil {
		return false, errors.Wrap(err, "delete subscription edge")
	}
	return res.DeletedCount > 0, nil
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID bson.ObjectID) (int64, error) {
	n, err := r.subs().CountDocuments(ctx, bson.M{"channel_id": channelID})
	if err != nil {
		return 0, errors.Wrap(err, "count subscribers")
	}
	return n, nil
}

// counterpartPipeline lists the user profiles on the other end of the
// subscription edges matching filter. localField picks which side to walk.
func counterpartPipeline(filter bson.M, localField string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageMatch, Value: filter}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         ColUsers,
			KeyLocalField:   localField,
			KeyForeignField: "_id",
			KeyAs:           "profile",
			KeyPipeline: mongo.Pipeline{
				{{Key: StageProject, Value: bson.M{
					"_id":       1,
					"username":  1,
					"full_name": 1,
					"avatar":    "$avatar.url",
				}}},
			},
		}}},
		{{Key: StageUnwind, Value: "$profile"}},
		{{Key: StageReplaceRoot, Value: bson.M{"newRoot": "$profile"}}},
	}
}

// Subscribers returns the profiles of everyone subscribed to channelID.
func (r *SubscriptionRepository) Subscribers(ctx context.Context, channelID bson.ObjectID) ([]dto.UserProfile, error) {
	return r.counterparts(ctx, counterpartPipeline(bson.M{"channel_id": channelID}, "subscriber_id"))
}

// SubscribedChannels returns the profiles of every channel subscriberID
// follows.
func (r *SubscriptionRepository) SubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]dto.UserProfile, error) {
	return r.counterparts(ctx, counterpartPipeline(bson.M{"subscriber_id": subscriberID}, "channel_id"))
}

func (r *SubscriptionRepository) counterparts(ctx context.Context, pipe mongo.Pipeline) ([]dto.UserProfile, error) {
	cur, err := r.subs().Aggregate(ctx, pipe)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate subscription counterparts")
	}
	defer cur.Close(ctx)

	profiles := []dto.UserProfile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, errors.Wrap(err, "decode subscription counterparts")
	}
	return profiles, nil
}
