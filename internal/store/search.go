package store

import (
	"cmp"
	"slices"
	"strings"

	"github.com/anonto42/reelshare/backend/internal/models"
)

// SearchUsers lists profiles whose username contains query, ignoring case,
// in registration order.
func (s *Store) SearchUsers(query string, page, pageSize int) []models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]models.UserProfile, 0)
	for _, id := range s.profileOrder {
		p := s.profiles[id]
		if strings.Contains(strings.ToLower(p.Username), q) {
			out = append(out, *p)
		}
	}
	return paginate(out, page, pageSize)
}

// GetTopHashtags returns every hashtag that has received a like. With three or
// more entries they are ordered by popularity; smaller sets keep first-liked order.
func (s *Store) GetTopHashtags() []models.Hashtag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Hashtag, 0, len(s.hashtagOrder))
	for _, tag := range s.hashtagOrder {
		out = append(out, models.Hashtag{
			Name:      tag,
			PostIDs:   slices.Clone(s.tagPosts[tag]),
			PostCount: s.hashtags[tag],
		})
	}
	if len(out) < 3 {
		return out
	}
	slices.SortFunc(out, func(a, b models.Hashtag) int {
		if c := cmp.Compare(b.PostCount, a.PostCount); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
