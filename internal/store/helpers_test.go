package store

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/reelshare/backend/internal/auth"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

// stepClock advances by one second on every reading
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	clock := &stepClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(auth.NewStaticAuthorizer("admin"), WithClock(clock.Now))
}

func mustRegister(t *testing.T, s *Store, identity, username string) *models.UserProfile {
	t.Helper()
	p, err := s.Register(ctx, identity, username, "", "")
	require.NoError(t, err)
	return p
}

func mustPost(t *testing.T, s *Store, author, caption string) *models.Post {
	t.Helper()
	p, err := s.CreatePost(ctx, author, models.NewPost{
		MediaRef:  "blob://" + caption,
		MediaType: models.MediaPhoto,
		Caption:   caption,
	})
	require.NoError(t, err)
	return p
}

func profileOf(t *testing.T, s *Store, identity string) *models.UserProfile {
	t.Helper()
	p, ok, err := s.GetProfile(ctx, identity, identity)
	require.NoError(t, err)
	require.True(t, ok)
	return p
}

func postIDs(posts []models.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
