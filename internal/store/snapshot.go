package store

import (
	"cmp"
	"errors"
	"slices"

	"github.com/anonto42/reelshare/backend/internal/models"
	"go.uber.org/zap"
)

// Snapshot returns a consistent copy of every entity table. Derived analytics
// tables are not included; they are rebuilt by RefreshTrending.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &models.Snapshot{
		TakenAt:       s.now(),
		NextPostID:    s.nextPostID,
		NextCommentID: s.nextCommentID,
		Profiles:      make([]models.UserProfile, 0, len(s.profiles)),
		Posts:         make([]models.Post, 0, len(s.posts)),
		Comments:      make([]models.Comment, 0, len(s.comments)),
		Likes:         make([]models.LikeSet, 0, len(s.likes)),
		Following:     identitySets(s.following),
		Followers:     identitySets(s.followers),
		TagPosts:      make([]models.TagPosts, 0, len(s.tagPosts)),
		Hashtags:      make([]models.Hashtag, 0, len(s.hashtags)),
		Features:      make([]models.SocialFeature, 0, len(s.features)),
	}

	for _, id := range s.profileOrder {
		snap.Profiles = append(snap.Profiles, *s.profiles[id])
	}
	for _, p := range s.posts {
		snap.Posts = append(snap.Posts, clonePost(p))
	}
	slices.SortFunc(snap.Posts, func(a, b models.Post) int { return cmp.Compare(a.ID, b.ID) })
	for _, c := range s.comments {
		snap.Comments = append(snap.Comments, *c)
	}
	slices.SortFunc(snap.Comments, func(a, b models.Comment) int { return cmp.Compare(a.ID, b.ID) })
	for postID, set := range s.likes {
		snap.Likes = append(snap.Likes, models.LikeSet{PostID: postID, Likers: set.Items()})
	}
	slices.SortFunc(snap.Likes, func(a, b models.LikeSet) int { return cmp.Compare(a.PostID, b.PostID) })
	for _, tag := range s.tagOrder {
		snap.TagPosts = append(snap.TagPosts, models.TagPosts{Tag: tag, PostIDs: slices.Clone(s.tagPosts[tag])})
	}
	for _, tag := range s.hashtagOrder {
		snap.Hashtags = append(snap.Hashtags, models.Hashtag{Name: tag, PostCount: s.hashtags[tag]})
	}
	for _, id := range s.featureOrder {
		snap.Features = append(snap.Features, cloneFeature(s.features[id]))
	}
	return snap
}

func identitySets(m map[string]*orderedSet) []models.IdentitySet {
	out := make([]models.IdentitySet, 0, len(m))
	for id, set := range m {
		out = append(out, models.IdentitySet{Identity: id, Members: set.Items()})
	}
	slices.SortFunc(out, func(a, b models.IdentitySet) int { return cmp.Compare(a.Identity, b.Identity) })
	return out
}

// Restore replaces the whole dataset with the content of snap
func (s *Store) Restore(snap *models.Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	for i := range snap.Profiles {
		p := snap.Profiles[i]
		s.putProfile(&p)
	}
	for i := range snap.Posts {
		p := clonePost(&snap.Posts[i])
		s.posts[p.ID] = &p
		s.nextPostID = max(s.nextPostID, p.ID+1)
	}
	for i := range snap.Comments {
		c := snap.Comments[i]
		s.comments[c.ID] = &c
		s.nextCommentID = max(s.nextCommentID, c.ID+1)
	}
	s.nextPostID = max(s.nextPostID, snap.NextPostID)
	s.nextCommentID = max(s.nextCommentID, snap.NextCommentID)

	for _, l := range snap.Likes {
		s.likes[l.PostID] = newOrderedSet(l.Likers...)
	}
	for _, f := range snap.Following {
		s.following[f.Identity] = newOrderedSet(f.Members...)
	}
	for _, f := range snap.Followers {
		s.followers[f.Identity] = newOrderedSet(f.Members...)
	}
	for _, t := range snap.TagPosts {
		if _, ok := s.tagPosts[t.Tag]; !ok {
			s.tagOrder = append(s.tagOrder, t.Tag)
		}
		s.tagPosts[t.Tag] = append(s.tagPosts[t.Tag], t.PostIDs...)
	}
	for _, h := range snap.Hashtags {
		if _, ok := s.hashtags[h.Name]; !ok {
			s.hashtagOrder = append(s.hashtagOrder, h.Name)
		}
		s.hashtags[h.Name] = h.PostCount
	}
	for i := range snap.Features {
		f := cloneFeature(&snap.Features[i])
		if _, ok := s.features[f.ID]; !ok {
			s.featureOrder = append(s.featureOrder, f.ID)
		}
		s.features[f.ID] = &f
	}

	s.logger.Info("store restored from snapshot",
		zap.Int("profiles", len(s.profiles)),
		zap.Int("posts", len(s.posts)),
		zap.Time("taken_at", snap.TakenAt))
	return nil
}
