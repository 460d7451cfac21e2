package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeTargetCollections(t *testing.T) {
	cases := map[LikeTarget]string{
		TargetVideo:   "videos",
		TargetComment: "comments",
		TargetTweet:   "tweets",
	}
	for target, want := range cases {
		col, ok := target.Collection()
		assert.True(t, ok)
		assert.Equal(t, want, col)
		assert.True(t, target.Valid())
	}
}

func TestLikeTargetClosedSet(t *testing.T) {
	for _, bad := range []LikeTarget{"", "playlist", "user", "Video"} {
		_, ok := bad.Collection()
		assert.False(t, ok, "%q should not resolve", bad)
		assert.False(t, bad.Valid())
	}
}
