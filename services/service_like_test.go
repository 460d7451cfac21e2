package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/internal/apierr"
	"vidtube/model"
)

type fakeLikeStore struct {
	resources map[string]bool
	edges     map[string]model.Like

	// forceDupOnInsert simulates a concurrent toggle winning the insert
	// between the exists-check and the write.
	forceDupOnInsert bool
	inserts          int
	deletes          int
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{
		resources: map[string]bool{},
		edges:     map[string]model.Like{},
	}
}

func resKey(target model.LikeTarget, id bson.ObjectID) string {
	return string(target) + "/" + id.Hex()
}

func fakeEdgeKey(target model.LikeTarget, targetID, actor bson.ObjectID) string {
	return string(target) + "/" + targetID.Hex() + "/" + actor.Hex()
}

func (f *fakeLikeStore) addResource(target model.LikeTarget, id bson.ObjectID) {
	f.resources[resKey(target, id)] = true
}

func (f *fakeLikeStore) ResourceExists(_ context.Context, target model.LikeTarget, id bson.ObjectID) (bool, error) {
	return f.resources[resKey(target, id)], nil
}

func (f *fakeLikeStore) EdgeExists(_ context.Context, target model.LikeTarget, targetID, actor bson.ObjectID) (bool, error) {
	_, ok := f.edges[fakeEdgeKey(target, targetID, actor)]
	return ok, nil
}

func (f *fakeLikeStore) InsertEdge(_ context.Context, edge model.Like) (bool, error) {
	f.inserts++
	key := fakeEdgeKey(edge.TargetType, edge.TargetID, edge.LikedBy)
	if f.forceDupOnInsert {
		f.edges[key] = edge
		return true, nil
	}
	if _, ok := f.edges[key]; ok {
		return true, nil
	}
	f.edges[key] = edge
	return false, nil
}

func (f *fakeLikeStore) DeleteEdge(_ context.Context, target model.LikeTarget, targetID, actor bson.ObjectID) (bool, error) {
	f.deletes++
	key := fakeEdgeKey(target, targetID, actor)
	if _, ok := f.edges[key]; !ok {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

func (f *fakeLikeStore) CountEdges(_ context.Context, target model.LikeTarget, targetID bson.ObjectID) (int64, error) {
	var n int64
	for _, e := range f.edges {
		if e.TargetType == target && e.TargetID == targetID {
			n++
		}
	}
	return n, nil
}

func TestLikeToggle_PairReturnsToOriginalState(t *testing.T) {
	store := newFakeLikeStore()
	video := bson.NewObjectID()
	actor := bson.NewObjectID()
	store.addResource(model.TargetVideo, video)

	svc := NewLikeService(store)
	ctx := context.Background()

	first, err := svc.Toggle(ctx, model.TargetVideo, video, actor)
	require.NoError(t, err)
	assert.False(t, first.WasActive)
	assert.True(t, first.IsActive)
	assert.Equal(t, int64(1), first.Total)

	second, err := svc.Toggle(ctx, model.TargetVideo, video, actor)
	require.NoError(t, err)
	assert.True(t, second.WasActive)
	assert.False(t, second.IsActive)
	assert.Equal(t, int64(0), second.Total)
}

func TestLikeToggle_NotFoundPerformsNoMutation(t *testing.T) {
	store := newFakeLikeStore()
	svc := NewLikeService(store)

	_, err := svc.Toggle(context.Background(), model.TargetVideo, bson.NewObjectID(), bson.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, 404, apierr.From(err).Code)
	assert.Zero(t, store.inserts)
	assert.Zero(t, store.deletes)
}

func TestLikeToggle_InvalidTargetKind(t *testing.T) {
	svc := NewLikeService(newFakeLikeStore())

	_, err := svc.Toggle(context.Background(), model.LikeTarget("playlist"), bson.NewObjectID(), bson.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, 400, apierr.From(err).Code)
}

func TestLikeToggle_DuplicateInsertFailsOpenToLiked(t *testing.T) {
	store := newFakeLikeStore()
	video := bson.NewObjectID()
	actor := bson.NewObjectID()
	store.addResource(model.TargetVideo, video)
	store.forceDupOnInsert = true

	svc := NewLikeService(store)
	state, err := svc.Toggle(context.Background(), model.TargetVideo, video, actor)
	require.NoError(t, err)

	// the edge already existed from the store's point of view, the caller
	// still ends up in the liked state
	assert.True(t, state.WasActive)
	assert.True(t, state.IsActive)
	assert.Equal(t, int64(1), state.Total)
}

func TestLikeToggle_DistinctActorsAccumulate(t *testing.T) {
	store := newFakeLikeStore()
	video := bson.NewObjectID()
	store.addResource(model.TargetVideo, video)

	svc := NewLikeService(store)
	ctx := context.Background()

	const n = 5
	var last ToggleState
	for i := 0; i < n; i++ {
		var err error
		last, err = svc.Toggle(ctx, model.TargetVideo, video, bson.NewObjectID())
		require.NoError(t, err)
	}
	assert.Equal(t, int64(n), last.Total)
}

func TestLikeToggle_CommentAndTweetTargets(t *testing.T) {
	store := newFakeLikeStore()
	comment := bson.NewObjectID()
	tweet := bson.NewObjectID()
	actor := bson.NewObjectID()
	store.addResource(model.TargetComment, comment)
	store.addResource(model.TargetTweet, tweet)

	svc := NewLikeService(store)
	ctx := context.Background()

	state, err := svc.Toggle(ctx, model.TargetComment, comment, actor)
	require.NoError(t, err)
	assert.True(t, state.IsActive)

	state, err = svc.Toggle(ctx, model.TargetTweet, tweet, actor)
	require.NoError(t, err)
	assert.True(t, state.IsActive)
	assert.Equal(t, int64(1), state.Total)
}
