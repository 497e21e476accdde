package store

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

// ExtractHashtags returns the unique whitespace-separated tokens of text that
// start with '#' and are longer than the '#' alone, in first-seen order.
func ExtractHashtags(text string) []string {
	var tags []string
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "#") && len(token) > 1 {
			tags = append(tags, token)
		}
	}
	if len(tags) == 0 {
		return []string{}
	}
	return funk.UniqString(tags)
}

// CreatePost stores a new post for caller. Tags come from in.Hashtags, or from
// the caption when no separate tag list is given.
func (s *Store) CreatePost(ctx context.Context, caller string, in models.NewPost) (*models.Post, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return nil, err
	}
	if !in.MediaType.Valid() {
		return nil, errs.Newf(errs.Invalid, "unsupported media type %q", in.MediaType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.profiles[caller]
	if !ok {
		return nil, errs.New(errs.NotFound, "profile not found")
	}

	source := in.Hashtags
	if strings.TrimSpace(source) == "" {
		source = in.Caption
	}

	post := &models.Post{
		ID:             s.nextPostID,
		AuthorIdentity: caller,
		MediaRef:       in.MediaRef,
		MediaType:      in.MediaType,
		Caption:        in.Caption,
		Hashtags:       ExtractHashtags(source),
		CreatedAt:      s.now(),
	}
	if in.Effect != nil {
		post.Effect = &models.Effect{
			FeatureID: in.Effect.FeatureID,
			Intensity: models.ClampIntensity(in.Effect.Intensity),
		}
	}
	s.nextPostID++
	s.posts[post.ID] = post

	for _, tag := range post.Hashtags {
		if _, ok := s.tagPosts[tag]; !ok {
			s.tagOrder = append(s.tagOrder, tag)
		}
		s.tagPosts[tag] = append(s.tagPosts[tag], post.ID)
	}
	author.PostsCount++

	s.logger.Debug("post created",
		zap.Int64("post_id", post.ID),
		zap.String("author", caller),
		zap.Strings("hashtags", post.Hashtags))
	out := clonePost(post)
	return &out, nil
}

// DeletePost removes a post. Only its author or an admin may delete it.
// Comments, likes and tag associations of the post are left in place.
func (s *Store) DeletePost(ctx context.Context, caller string, id int64) error {
	if err := s.requireUser(ctx, caller); err != nil {
		return err
	}
	admin := s.authz.IsAdmin(ctx, caller)

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return errs.Newf(errs.NotFound, "post %d not found", id)
	}
	if post.AuthorIdentity != caller && !admin {
		return errs.New(errs.Unauthorized, "only the author or an admin can delete this post")
	}

	delete(s.posts, id)
	if author, ok := s.profiles[post.AuthorIdentity]; ok {
		decrement(&author.PostsCount)
	}
	s.logger.Debug("post deleted", zap.Int64("post_id", id), zap.String("by", caller))
	return nil
}

// GetPost looks up a post by id
func (s *Store) GetPost(id int64) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, false
	}
	out := clonePost(post)
	return &out, true
}

// GetFeed lists all posts, newest first
func (s *Store) GetFeed(page, pageSize int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return paginate(s.postsWhere(nil, byRecency), page, pageSize)
}

// GetPostsByUser lists user's posts, newest first
func (s *Store) GetPostsByUser(user string, page, pageSize int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match := func(p *models.Post) bool { return p.AuthorIdentity == user }
	return paginate(s.postsWhere(match, byRecency), page, pageSize)
}

// GetTrendingPostsList lists all posts by like count, most liked first
func (s *Store) GetTrendingPostsList(page, pageSize int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return paginate(s.postsWhere(nil, byLikes), page, pageSize)
}

// SearchPosts lists posts whose caption contains query, ignoring case, newest first
func (s *Store) SearchPosts(query string, page, pageSize int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	match := func(p *models.Post) bool { return strings.Contains(strings.ToLower(p.Caption), q) }
	return paginate(s.postsWhere(match, byRecency), page, pageSize)
}

// byRecency orders newest first; equal timestamps fall back to the higher id first
func byRecency(a, b models.Post) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

// byLikes orders most liked first; equal counts fall back to the lower id first
func byLikes(a, b models.Post) int {
	if c := cmp.Compare(b.LikesCount, a.LikesCount); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func (s *Store) postsWhere(match func(*models.Post) bool, order func(a, b models.Post) int) []models.Post {
	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if match == nil || match(p) {
			out = append(out, clonePost(p))
		}
	}
	slices.SortFunc(out, order)
	return out
}
