package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/internal/apierr"
	"vidtube/internal/repository"
	"vidtube/model"
)

// ToggleState reports one edge flip: the state found, the state left
// behind, and a fresh count of edges on the resource.
type ToggleState struct {
	WasActive bool
	IsActive  bool
	Total     int64
}

type LikeService struct {
	store repository.LikeStore
}

func NewLikeService(store repository.LikeStore) *LikeService {
	return &LikeService{store: store}
}

// Toggle flips the (actor -> resource) like edge. The exists-check only
// picks a direction; the unique index is what decides races. An insert that
// hits a duplicate key means another request created the edge first, so the
// result fails open to "already liked". A delete that removes nothing means
// the edge was already gone and is a no-op.
func (s *LikeService) Toggle(ctx context.Context, target model.LikeTarget, resourceID, actor bson.ObjectID) (ToggleState, error) {
	var state ToggleState

	if !target.Valid() {
		return state, apierr.BadRequest("invalid like target")
	}

	exists, err := s.store.ResourceExists(ctx, target, resourceID)
	if err != nil {
		return state, err
	}
	if !exists {
		return state, apierr.NotFound(string(target) + " not found")
	}

	was, err := s.store.EdgeExists(ctx, target, resourceID, actor)
	if err != nil {
		return state, err
	}

	if was {
		if _, err := s.store.DeleteEdge(ctx, target, resourceID, actor); err != nil {
			return state, err
		}
		state.WasActive = true
		state.IsActive = false
	} else {
		dup, err := s.store.InsertEdge(ctx, model.Like{
			ID:         bson.NewObjectID(),
			TargetType: target,
			TargetID:   resourceID,
			LikedBy:    actor,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return state, err
		}
		state.WasActive = dup
		state.IsActive = true
	}

	total, err := s.store.CountEdges(ctx, target, resourceID)
	if err != nil {
		return state, err
	}
	state.Total = total
	return state, nil
}
