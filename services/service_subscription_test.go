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

type fakeSubStore struct {
	channels map[bson.ObjectID]bool
	edges    map[string]model.Subscription

	forceDupOnInsert bool
	inserts          int
	deletes          int
}

func newFakeSubStore() *fakeSubStore {
	return &fakeSubStore{
		channels: map[bson.ObjectID]bool{},
		edges:    map[string]model.Subscription{},
	}
}

func subKey(channelID, subscriberID bson.ObjectID) string {
	return channelID.Hex() + "/" + subscriberID.Hex()
}

func (f *fakeSubStore) ChannelExists(_ context.Context, channelID bson.ObjectID) (bool, error) {
	return f.channels[channelID], nil
}

func (f *fakeSubStore) EdgeExists(_ context.Context, channelID, subscriberID bson.ObjectID) (bool, error) {
	_, ok := f.edges[subKey(channelID, subscriberID)]
	return ok, nil
}

func (f *fakeSubStore) InsertEdge(_ context.Context, edge model.Subscription) (bool, error) {
	f.inserts++
	key := subKey(edge.ChannelID, edge.SubscriberID)
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

func (f *fakeSubStore) DeleteEdge(_ context.Context, channelID, subscriberID bson.ObjectID) (bool, error) {
	f.deletes++
	key := subKey(channelID, subscriberID)
	if _, ok := f.edges[key]; !ok {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

func (f *fakeSubStore) CountSubscribers(_ context.Context, channelID bson.ObjectID) (int64, error) {
	var n int64
	for _, e := range f.edges {
		if e.ChannelID == channelID {
			n++
		}
	}
	return n, nil
}

func TestSubscriptionToggle_Pair(t *testing.T) {
	store := newFakeSubStore()
	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()
	store.channels[channel] = true

	svc := NewSubscriptionService(store)
	ctx := context.Background()

	first, err := svc.Toggle(ctx, channel, subscriber)
	require.NoError(t, err)
	assert.False(t, first.WasActive)
	assert.True(t, first.IsActive)
	assert.Equal(t, int64(1), first.Total)

	second, err := svc.Toggle(ctx, channel, subscriber)
	require.NoError(t, err)
	assert.True(t, second.WasActive)
	assert.False(t, second.IsActive)
	assert.Equal(t, int64(0), second.Total)
}

func TestSubscriptionToggle_MissingChannel(t *testing.T) {
	store := newFakeSubStore()
	svc := NewSubscriptionService(store)

	_, err := svc.Toggle(context.Background(), bson.NewObjectID(), bson.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, 404, apierr.From(err).Code)
	assert.Zero(t, store.inserts)
	assert.Zero(t, store.deletes)
}

func TestSubscriptionToggle_DuplicateInsertFailsOpen(t *testing.T) {
	store := newFakeSubStore()
	channel := bson.NewObjectID()
	store.channels[channel] = true
	store.forceDupOnInsert = true

	svc := NewSubscriptionService(store)
	state, err := svc.Toggle(context.Background(), channel, bson.NewObjectID())
	require.NoError(t, err)
	assert.True(t, state.WasActive)
	assert.True(t, state.IsActive)
}

func TestSubscriptionToggle_SubscriberCountIsPerChannel(t *testing.T) {
	store := newFakeSubStore()
	a := bson.NewObjectID()
	b := bson.NewObjectID()
	store.channels[a] = true
	store.channels[b] = true

	svc := NewSubscriptionService(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Toggle(ctx, a, bson.NewObjectID())
		require.NoError(t, err)
	}
	state, err := svc.Toggle(ctx, b, bson.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), state.Total)
}
