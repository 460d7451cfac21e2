package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/internal/apierr"
	"vidtube/internal/repository"
	"vidtube/model"
)

type SubscriptionService struct {
	store repository.SubscriptionStore
}

func NewSubscriptionService(store repository.SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{store: store}
}

// Toggle flips the (subscriber -> channel) edge under the same contract as
// the like toggle: duplicate-key insert fails open to subscribed, empty
// delete is a no-op, and the subscriber total is recounted afterwards.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID, subscriberID bson.ObjectID) (ToggleState, error) {
	var state ToggleState

	exists, err := s.store.ChannelExists(ctx, channelID)
	if err != nil {
		return state, err
	}
	if !exists {
		return state, apierr.NotFound("channel not found")
	}

	was, err := s.store.EdgeExists(ctx, channelID, subscriberID)
	if err != nil {
		return state, err
	}

	if was {
		if _, err := s.store.DeleteEdge(ctx, channelID, subscriberID); err != nil {
			return state, err
		}
		state.WasActive = true
		state.IsActive = false
	} else {
		dup, err := s.store.InsertEdge(ctx, model.Subscription{
			ID:           bson.NewObjectID(),
			ChannelID:    channelID,
			SubscriberID: subscriberID,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return state, err
		}
		state.WasActive = dup
		state.IsActive = true
	}

	total, err := s.store.CountSubscribers(ctx, channelID)
	if err != nil {
		return state, err
	}
	state.Total = total
	return state, nil
}
