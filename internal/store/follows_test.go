package store

import (
	"testing"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSymmetry(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "a", "alice")
	mustRegister(t, s, "b", "bob")

	require.NoError(t, s.Follow(ctx, "a", "b"))
	assert.True(t, s.IsFollowing("a", "b"))
	assert.False(t, s.IsFollowing("b", "a"))
	assert.Equal(t, []string{"a"}, s.GetFollowers("b", 0, 10))
	assert.Equal(t, []string{"b"}, s.GetFollowing("a", 0, 10))
	assert.Equal(t, 1, profileOf(t, s, "a").FollowingCount)
	assert.Equal(t, 1, profileOf(t, s, "b").FollowersCount)

	require.NoError(t, s.Unfollow(ctx, "a", "b"))
	assert.False(t, s.IsFollowing("a", "b"))
	assert.Empty(t, s.GetFollowers("b", 0, 10))
	assert.Empty(t, s.GetFollowing("a", 0, 10))
	assert.Zero(t, profileOf(t, s, "a").FollowingCount)
	assert.Zero(t, profileOf(t, s, "b").FollowersCount)
}

func TestFollowErrors(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, errs.Is(s.Follow(ctx, "a", "a"), errs.Invalid))
	assert.True(t, errs.Is(s.Unfollow(ctx, "a", "a"), errs.Invalid))
	assert.True(t, errs.Is(s.Follow(ctx, "", "a"), errs.Unauthorized))
	assert.True(t, errs.Is(s.Unfollow(ctx, "a", "b"), errs.Conflict), "a follows nobody")

	require.NoError(t, s.Follow(ctx, "a", "b"))
	assert.True(t, errs.Is(s.Follow(ctx, "a", "b"), errs.Conflict))
	assert.True(t, errs.Is(s.Unfollow(ctx, "a", "c"), errs.Conflict), "a does not follow c")
}

func TestFollowWithoutProfiles(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "b", "bob")

	require.NoError(t, s.Follow(ctx, "a", "b"))
	assert.Equal(t, 1, profileOf(t, s, "b").FollowersCount)
	require.NoError(t, s.Unfollow(ctx, "a", "b"))
	require.NoError(t, s.Follow(ctx, "a", "b"))
	assert.Equal(t, 1, profileOf(t, s, "b").FollowersCount)
}

func TestFollowListsPaginate(t *testing.T) {
	s := newTestStore(t)
	for _, f := range []string{"u1", "u2", "u3", "u4", "u5"} {
		require.NoError(t, s.Follow(ctx, f, "star"))
		require.NoError(t, s.Follow(ctx, "star", f))
	}
	require.NoError(t, s.Unfollow(ctx, "u2", "star"))

	assert.Equal(t, []string{"u1", "u3"}, s.GetFollowers("star", 0, 2))
	assert.Equal(t, []string{"u4", "u5"}, s.GetFollowers("star", 1, 2))
	assert.Empty(t, s.GetFollowers("star", 2, 2))
	assert.Equal(t, []string{"u5"}, s.GetFollowing("star", 2, 2))
	assert.Empty(t, s.GetFollowers("nobody", 0, 10))
	assert.Empty(t, s.GetFollowing("nobody", 0, 10))
}
