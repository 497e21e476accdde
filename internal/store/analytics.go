package store

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"go.uber.org/zap"
)

// Viral thresholds
const (
	ViralEngagementRate = 1.0
	ViralMinLikes       = 10
)

// TrendingStats summarises the dataset at the end of a RefreshTrending pass
type TrendingStats struct {
	Profiles   int
	Posts      int
	Comments   int
	Hashtags   int
	Trending   int
	ViralPosts int
}

// RefreshTrending rebuilds the derived analytics tables from the live entity
// tables: trending posts, top users, engagement rates, the viral set and
// feature usage counts. limit bounds the trending post and top user tables.
func (s *Store) RefreshTrending(limit int) TrendingStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	trending := make([]models.TrendingPost, 0, len(s.posts))
	engagement := make(map[int64]float64, len(s.posts))
	viral := make(map[int64]struct{})
	usage := make(map[string]int)

	for _, p := range s.posts {
		trending = append(trending, models.TrendingPost{PostID: p.ID, Score: 2*p.LikesCount + p.CommentsCount})

		followers := 0
		if author, ok := s.profiles[p.AuthorIdentity]; ok {
			followers = author.FollowersCount
		}
		rate := float64(p.LikesCount+p.CommentsCount) / float64(max(1, followers))
		engagement[p.ID] = rate
		if rate >= ViralEngagementRate && p.LikesCount >= ViralMinLikes {
			viral[p.ID] = struct{}{}
		}
		if p.Effect != nil {
			usage[p.Effect.FeatureID]++
		}
	}
	slices.SortFunc(trending, func(a, b models.TrendingPost) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.PostID, b.PostID)
	})
	if limit >= 0 && len(trending) > limit {
		trending = trending[:limit]
	}

	ranked := make([]*models.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		if p.TotalLikes > 0 {
			ranked = append(ranked, p)
		}
	}
	slices.SortFunc(ranked, func(a, b *models.UserProfile) int {
		if c := cmp.Compare(b.TotalLikes, a.TotalLikes); c != 0 {
			return c
		}
		return cmp.Compare(a.Identity, b.Identity)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	topUsers := make(map[string]int, len(ranked))
	for _, p := range ranked {
		topUsers[p.Identity] = p.TotalLikes
	}

	for id, f := range s.features {
		f.UsageCount = usage[id]
	}

	s.trendingPosts = trending
	s.topUsers = topUsers
	s.engagement = engagement
	s.viral = viral

	stats := TrendingStats{
		Profiles:   len(s.profiles),
		Posts:      len(s.posts),
		Comments:   len(s.comments),
		Hashtags:   len(s.hashtags),
		Trending:   len(trending),
		ViralPosts: len(viral),
	}
	s.logger.Debug("trending refreshed", zap.Int("trending", stats.Trending), zap.Int("viral", stats.ViralPosts))
	return stats
}

// GetTrendingPosts returns the trending table from the last refresh
func (s *Store) GetTrendingPosts() []models.TrendingPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.trendingPosts == nil {
		return []models.TrendingPost{}
	}
	return slices.Clone(s.trendingPosts)
}

// GetTopTrendingUsers returns identity -> total likes for the top users of the last refresh
func (s *Store) GetTopTrendingUsers() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.topUsers)
}

// GetEngagementRate returns the engagement rate computed for a post at the last refresh
func (s *Store) GetEngagementRate(postID int64) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rate, ok := s.engagement[postID]
	return rate, ok
}

// IsViral reports whether the post crossed the viral thresholds at the last refresh
func (s *Store) IsViral(postID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.viral[postID]
	return ok
}

// UpsertFeature creates or replaces a catalog feature. Admin only.
// An out-of-range intensity is replaced with the default; usage is preserved.
func (s *Store) UpsertFeature(ctx context.Context, caller string, f models.SocialFeature) (*models.SocialFeature, error) {
	if !s.authz.IsAdmin(ctx, caller) {
		return nil, errs.New(errs.Unauthorized, "only admins can edit the feature catalog")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f.Intensity = models.ClampIntensity(f.Intensity)
	f.RelatedIDs = slices.Clone(f.RelatedIDs)
	if existing, ok := s.features[f.ID]; ok {
		f.UsageCount = existing.UsageCount
		*existing = f
	} else {
		f.UsageCount = 0
		s.features[f.ID] = &f
		s.featureOrder = append(s.featureOrder, f.ID)
	}

	s.logger.Debug("feature saved", zap.String("feature_id", f.ID))
	out := cloneFeature(s.features[f.ID])
	return &out, nil
}

// DeleteFeature removes a catalog feature. Admin only.
func (s *Store) DeleteFeature(ctx context.Context, caller, id string) error {
	if !s.authz.IsAdmin(ctx, caller) {
		return errs.New(errs.Unauthorized, "only admins can edit the feature catalog")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.features[id]; !ok {
		return errs.Newf(errs.NotFound, "feature %q not found", id)
	}
	delete(s.features, id)
	s.featureOrder = slices.DeleteFunc(s.featureOrder, func(v string) bool { return v == id })
	return nil
}

// GetTrendingFeatures lists the catalog by usage, most used first
func (s *Store) GetTrendingFeatures() []models.SocialFeature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SocialFeature, 0, len(s.features))
	for _, id := range s.featureOrder {
		out = append(out, cloneFeature(s.features[id]))
	}
	slices.SortFunc(out, func(a, b models.SocialFeature) int {
		if c := cmp.Compare(b.UsageCount, a.UsageCount); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// GetRelatedFeatures lists the explicitly related features of id followed by
// the other features of its category.
func (s *Store) GetRelatedFeatures(id string) []models.SocialFeature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SocialFeature, 0)
	f, ok := s.features[id]
	if !ok {
		return out
	}
	seen := map[string]bool{id: true}
	for _, rid := range f.RelatedIDs {
		if r, ok := s.features[rid]; ok && !seen[rid] {
			seen[rid] = true
			out = append(out, cloneFeature(r))
		}
	}
	for _, oid := range s.featureOrder {
		if o := s.features[oid]; !seen[oid] && o.Category == f.Category {
			seen[oid] = true
			out = append(out, cloneFeature(o))
		}
	}
	return out
}

// GetFeatureDetails looks up a catalog feature by id
func (s *Store) GetFeatureDetails(id string) (*models.SocialFeature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.features[id]
	if !ok {
		return nil, false
	}
	out := cloneFeature(f)
	return &out, true
}
