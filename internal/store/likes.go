package store

import (
	"context"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"go.uber.org/zap"
)

// Like records caller's like on a post and bumps the post's like count, the
// author's total likes and the popularity of every tag on the post.
func (s *Store) Like(ctx context.Context, caller string, postID int64) (models.LikeStatus, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return models.LikeStatus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.likes[postID]
	if ok && set.Has(caller) {
		return models.LikeStatus{}, errs.New(errs.Conflict, "post already liked")
	}
	post, ok := s.posts[postID]
	if !ok {
		return models.LikeStatus{}, errs.Newf(errs.NotFound, "post %d not found", postID)
	}

	if set == nil {
		set = newOrderedSet()
		s.likes[postID] = set
	}
	set.Add(caller)
	post.LikesCount++
	if author, ok := s.profiles[post.AuthorIdentity]; ok {
		author.TotalLikes++
	}
	for _, tag := range post.Hashtags {
		if _, ok := s.hashtags[tag]; !ok {
			s.hashtagOrder = append(s.hashtagOrder, tag)
		}
		s.hashtags[tag]++
	}

	s.logger.Debug("post liked", zap.Int64("post_id", postID), zap.String("by", caller))
	return models.LikeStatus{PostID: postID, Liked: true, LikesCount: post.LikesCount}, nil
}

// Unlike withdraws caller's like, reversing every counter Like touched
func (s *Store) Unlike(ctx context.Context, caller string, postID int64) (models.LikeStatus, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return models.LikeStatus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.likes[postID]
	if !ok {
		return models.LikeStatus{}, errs.Newf(errs.NotFound, "post %d has no likes", postID)
	}
	if !set.Has(caller) {
		return models.LikeStatus{}, errs.New(errs.Conflict, "post not liked")
	}
	post, ok := s.posts[postID]
	if !ok {
		return models.LikeStatus{}, errs.Newf(errs.NotFound, "post %d not found", postID)
	}

	set.Remove(caller)
	decrement(&post.LikesCount)
	if author, ok := s.profiles[post.AuthorIdentity]; ok {
		decrement(&author.TotalLikes)
	}
	for _, tag := range post.Hashtags {
		if n, ok := s.hashtags[tag]; ok {
			decrement(&n)
			s.hashtags[tag] = n
		}
	}

	s.logger.Debug("post unliked", zap.Int64("post_id", postID), zap.String("by", caller))
	return models.LikeStatus{PostID: postID, Liked: false, LikesCount: post.LikesCount}, nil
}

// IsLiked reports whether caller currently likes the post
func (s *Store) IsLiked(ctx context.Context, caller string, postID int64) (bool, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.likes[postID]
	return ok && set.Has(caller), nil
}

// GetLikers lists the identities that like a post, in like order
func (s *Store) GetLikers(postID int64, page, pageSize int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.likes[postID]
	if !ok {
		return []string{}
	}
	return paginate(set.items, page, pageSize)
}
