package store

import (
	"testing"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	s := newTestStore(t)

	p := mustRegister(t, s, "id-alice", "alice")
	assert.Equal(t, "id-alice", p.Identity)
	assert.Zero(t, p.FollowersCount+p.FollowingCount+p.TotalLikes+p.PostsCount)
	assert.False(t, p.CreatedAt.IsZero())

	mustRegister(t, s, "id-bob", "bob")

	_, err := s.Register(ctx, "id-carol", "alice", "", "")
	assert.True(t, errs.Is(err, errs.Conflict))

	// usernames are compared exactly on registration
	mustRegister(t, s, "id-carol", "Alice")

	_, err = s.Register(ctx, "id-alice", "alice2", "", "")
	assert.True(t, errs.Is(err, errs.Conflict), "a second profile for the same identity")

	_, err = s.Register(ctx, "", "nobody", "", "")
	assert.True(t, errs.Is(err, errs.Unauthorized))
}

func TestGetProfile(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")

	p, ok, err := s.GetOwnProfile(ctx, "id-alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", p.Username)

	_, ok, err = s.GetProfile(ctx, "id-alice", "id-ghost")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = s.GetProfile(ctx, "", "id-alice")
	assert.True(t, errs.Is(err, errs.Unauthorized))

	// returned profiles are copies
	p.Username = "mallory"
	assert.Equal(t, "alice", profileOf(t, s, "id-alice").Username)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "id-alice", "alice")
	mustRegister(t, s, "id-bob", "bob")
	mustPost(t, s, "id-alice", "first")

	_, err := s.UpdateProfile(ctx, "id-alice", "bob", "", "")
	assert.True(t, errs.Is(err, errs.Conflict))

	_, err = s.UpdateProfile(ctx, "id-ghost", "ghost", "", "")
	assert.True(t, errs.Is(err, errs.NotFound))

	p, err := s.UpdateProfile(ctx, "id-alice", "alice", "hello", "blob://avatar")
	require.NoError(t, err, "keeping your own username is not a conflict")
	assert.Equal(t, "hello", p.Bio)
	assert.Equal(t, "blob://avatar", p.AvatarRef)
	assert.Equal(t, 1, p.PostsCount)
	assert.Equal(t, alice.CreatedAt, p.CreatedAt)

	p, err = s.UpdateProfile(ctx, "id-alice", "alice_new", "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "alice_new", p.Username)
	assert.Empty(t, p.AvatarRef)

	_, err = s.Register(ctx, "id-carol", "alice", "", "")
	assert.NoError(t, err, "old username is free again")
}

func TestSaveProfile(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "id-alice", "alice")
	mustRegister(t, s, "id-bob", "bob")

	p, err := s.SaveProfile(ctx, "id-alice", models.UserProfile{
		Identity:   "id-bob",
		Username:   "bob",
		Bio:        "spoof",
		TotalLikes: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "id-alice", p.Identity, "identity is re-stamped to the caller")
	assert.Equal(t, "bob", p.Username, "no uniqueness check on save")
	assert.Equal(t, 3, p.TotalLikes)
	assert.Equal(t, alice.CreatedAt, p.CreatedAt)

	bob := profileOf(t, s, "id-bob")
	assert.Equal(t, "bob", bob.Username)
	assert.Empty(t, bob.Bio)

	created, err := s.SaveProfile(ctx, "id-new", models.UserProfile{Username: "newbie"})
	require.NoError(t, err)
	assert.Equal(t, "id-new", created.Identity)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, s.SearchUsers("", 0, 10), 3)

	_, err = s.SaveProfile(ctx, "", models.UserProfile{Username: "x"})
	assert.True(t, errs.Is(err, errs.Unauthorized))
}

func TestSearchUsers(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "1", "Alice")
	mustRegister(t, s, "2", "bob")
	mustRegister(t, s, "3", "malice")
	mustRegister(t, s, "4", "ALIcia")

	got := s.SearchUsers("ali", 0, 10)
	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Username)
	}
	assert.Equal(t, []string{"Alice", "malice", "ALIcia"}, names)

	assert.Len(t, s.SearchUsers("ali", 1, 2), 1)
	assert.Empty(t, s.SearchUsers("zed", 0, 10))
	assert.Len(t, s.SearchUsers("", 0, 10), 4)
}
