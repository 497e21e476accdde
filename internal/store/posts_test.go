package store

import (
	"testing"
	"time"

	"github.com/anonto42/reelshare/backend/internal/auth"
	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"hi #fun", []string{"#fun"}},
		{"#a # #b c#d #a", []string{"#a", "#b"}},
		{"  ", []string{}},
		{"#Go #go", []string{"#Go", "#go"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractHashtags(tt.in), tt.in)
	}
}

func TestCreatePost(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePost(ctx, "id-alice", models.NewPost{MediaRef: "m", MediaType: models.MediaVideo})
	assert.True(t, errs.Is(err, errs.NotFound), "no profile yet")

	mustRegister(t, s, "id-alice", "alice")

	_, err = s.CreatePost(ctx, "id-alice", models.NewPost{MediaRef: "m", MediaType: "gif"})
	assert.True(t, errs.Is(err, errs.Invalid))

	_, err = s.CreatePost(ctx, "", models.NewPost{MediaRef: "m", MediaType: models.MediaVideo})
	assert.True(t, errs.Is(err, errs.Unauthorized))

	p, err := s.CreatePost(ctx, "id-alice", models.NewPost{
		MediaRef:  "blob://1",
		MediaType: models.MediaVideo,
		Caption:   "hi #fun",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID, "failed creations do not consume ids")
	assert.Equal(t, []string{"#fun"}, p.Hashtags)
	assert.Zero(t, p.LikesCount)
	assert.Zero(t, p.CommentsCount)
	assert.Nil(t, p.Effect)

	p, err = s.CreatePost(ctx, "id-alice", models.NewPost{
		MediaRef:  "blob://2",
		MediaType: models.MediaPhoto,
		Caption:   "caption #ignored",
		Hashtags:  "#one two #two #",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
	assert.Equal(t, []string{"#one", "#two"}, p.Hashtags)

	assert.Equal(t, 2, profileOf(t, s, "id-alice").PostsCount)
}

func TestCreatePostEffectIntensity(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")

	for in, want := range map[int]int{0: 0, 100: 100, 73: 73, -1: models.DefaultIntensity, 101: models.DefaultIntensity} {
		p, err := s.CreatePost(ctx, "id-alice", models.NewPost{
			MediaRef:  "m",
			MediaType: models.MediaVideo,
			Effect:    &models.Effect{FeatureID: "sparkle", Intensity: in},
		})
		require.NoError(t, err)
		require.NotNil(t, p.Effect)
		assert.Equal(t, want, p.Effect.Intensity, "intensity %d", in)
		assert.Equal(t, "sparkle", p.Effect.FeatureID)
	}
}

func TestDeletePost(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")
	mustRegister(t, s, "id-bob", "bob")
	p1 := mustPost(t, s, "id-alice", "one")
	p2 := mustPost(t, s, "id-alice", "two")

	err := s.DeletePost(ctx, "id-bob", p1.ID)
	assert.True(t, errs.Is(err, errs.Unauthorized))

	err = s.DeletePost(ctx, "id-alice", 99)
	assert.True(t, errs.Is(err, errs.NotFound))

	require.NoError(t, s.DeletePost(ctx, "id-alice", p1.ID))
	assert.Equal(t, 1, profileOf(t, s, "id-alice").PostsCount)
	_, ok := s.GetPost(p1.ID)
	assert.False(t, ok)
	assert.Equal(t, []int64{p2.ID}, postIDs(s.GetFeed(0, 10)))

	require.NoError(t, s.DeletePost(ctx, "admin", p2.ID), "admins may delete any post")
	assert.Equal(t, 0, profileOf(t, s, "id-alice").PostsCount)

	err = s.DeletePost(ctx, "id-alice", p2.ID)
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestDeletePostFloorsPostsCount(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")
	p := mustPost(t, s, "id-alice", "one")

	_, err := s.SaveProfile(ctx, "id-alice", models.UserProfile{Username: "alice"})
	require.NoError(t, err)
	require.NoError(t, s.DeletePost(ctx, "id-alice", p.ID))
	assert.Equal(t, 0, profileOf(t, s, "id-alice").PostsCount)
}

func TestFeedPagination(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")
	mustRegister(t, s, "id-bob", "bob")
	for i := 0; i < 7; i++ {
		author := "id-alice"
		if i%2 == 1 {
			author = "id-bob"
		}
		mustPost(t, s, author, "post")
	}

	var all []int64
	for page := 0; ; page++ {
		got := s.GetFeed(page, 3)
		assert.LessOrEqual(t, len(got), 3)
		if len(got) == 0 {
			break
		}
		all = append(all, postIDs(got)...)
	}
	assert.Equal(t, []int64{7, 6, 5, 4, 3, 2, 1}, all)
	assert.Empty(t, s.GetFeed(3, 3))

	assert.Equal(t, []int64{6, 4, 2}, postIDs(s.GetPostsByUser("id-bob", 0, 10)))
	assert.Equal(t, []int64{3, 1}, postIDs(s.GetPostsByUser("id-alice", 1, 2)))
	assert.Empty(t, s.GetPostsByUser("id-ghost", 0, 10))
}

func TestFeedTieBreak(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(auth.NewStaticAuthorizer(), WithClock(func() time.Time { return fixed }))
	mustRegister(t, s, "id-alice", "alice")
	for i := 0; i < 4; i++ {
		mustPost(t, s, "id-alice", "same instant")
	}
	assert.Equal(t, []int64{4, 3, 2, 1}, postIDs(s.GetFeed(0, 10)))
}

func TestTrendingPostsList(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")
	for i := 0; i < 4; i++ {
		mustPost(t, s, "id-alice", "post")
	}
	for _, liker := range []string{"u1", "u2", "u3"} {
		_, err := s.Like(ctx, liker, 3)
		require.NoError(t, err)
	}
	_, err := s.Like(ctx, "u1", 2)
	require.NoError(t, err)
	_, err = s.Like(ctx, "u1", 4)
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 2, 4, 1}, postIDs(s.GetTrendingPostsList(0, 10)))
	assert.Equal(t, []int64{4, 1}, postIDs(s.GetTrendingPostsList(1, 2)))
}

func TestSearchPosts(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")
	mustPost(t, s, "id-alice", "Sunset at the BEACH")
	mustPost(t, s, "id-alice", "mountains")
	mustPost(t, s, "id-alice", "beach volleyball")

	assert.Equal(t, []int64{3, 1}, postIDs(s.SearchPosts("beach", 0, 10)))
	assert.Equal(t, []int64{1}, postIDs(s.SearchPosts("Beach", 1, 1)))
	assert.Empty(t, s.SearchPosts("desert", 0, 10))
}

func TestGetPostReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	mustRegister(t, s, "id-alice", "alice")
	created := mustPost(t, s, "id-alice", "hi #fun")

	p, ok := s.GetPost(created.ID)
	require.True(t, ok)
	p.Hashtags[0] = "#hacked"
	p.LikesCount = 100

	again, _ := s.GetPost(created.ID)
	assert.Equal(t, []string{"#fun"}, again.Hashtags)
	assert.Zero(t, again.LikesCount)
}
