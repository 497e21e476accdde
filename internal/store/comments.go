package store

import (
	"cmp"
	"context"
	"slices"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"go.uber.org/zap"
)

// AddComment attaches a comment by caller to an existing post
func (s *Store) AddComment(ctx context.Context, caller string, postID int64, text string) (*models.Comment, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, errs.Newf(errs.NotFound, "post %d not found", postID)
	}

	c := &models.Comment{
		ID:             s.nextCommentID,
		PostID:         postID,
		AuthorIdentity: caller,
		Text:           text,
		CreatedAt:      s.now(),
	}
	s.nextCommentID++
	s.comments[c.ID] = c
	post.CommentsCount++

	s.logger.Debug("comment added", zap.Int64("comment_id", c.ID), zap.Int64("post_id", postID))
	out := *c
	return &out, nil
}

// DeleteComment removes a comment. The comment author, the post author and
// admins may delete it. If the post is already gone only the comment is removed.
func (s *Store) DeleteComment(ctx context.Context, caller string, id int64) error {
	if err := s.requireUser(ctx, caller); err != nil {
		return err
	}
	admin := s.authz.IsAdmin(ctx, caller)

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return errs.Newf(errs.NotFound, "comment %d not found", id)
	}
	post, postExists := s.posts[c.PostID]
	allowed := admin || c.AuthorIdentity == caller || (postExists && post.AuthorIdentity == caller)
	if !allowed {
		return errs.New(errs.Unauthorized, "only the comment author, post author or an admin can delete this comment")
	}

	delete(s.comments, id)
	if postExists {
		decrement(&post.CommentsCount)
	}
	s.logger.Debug("comment deleted", zap.Int64("comment_id", id), zap.String("by", caller))
	return nil
}

// GetComments lists the comments of a post, oldest first
func (s *Store) GetComments(postID int64, page, pageSize int) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	slices.SortFunc(out, func(a, b models.Comment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return paginate(out, page, pageSize)
}
