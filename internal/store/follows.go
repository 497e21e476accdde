package store

import (
	"context"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"go.uber.org/zap"
)

// Follow makes caller follow target
func (s *Store) Follow(ctx context.Context, caller, target string) error {
	if err := s.requireUser(ctx, caller); err != nil {
		return err
	}
	if caller == target {
		return errs.New(errs.Invalid, "cannot follow yourself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	following, ok := s.following[caller]
	if ok && following.Has(target) {
		return errs.New(errs.Conflict, "already following this user")
	}
	if !ok {
		following = newOrderedSet()
		s.following[caller] = following
	}
	followers, ok := s.followers[target]
	if !ok {
		followers = newOrderedSet()
		s.followers[target] = followers
	}

	following.Add(target)
	followers.Add(caller)
	if p, ok := s.profiles[caller]; ok {
		p.FollowingCount++
	}
	if p, ok := s.profiles[target]; ok {
		p.FollowersCount++
	}

	s.logger.Debug("follow", zap.String("follower", caller), zap.String("followee", target))
	return nil
}

// Unfollow removes caller's follow of target
func (s *Store) Unfollow(ctx context.Context, caller, target string) error {
	if err := s.requireUser(ctx, caller); err != nil {
		return err
	}
	if caller == target {
		return errs.New(errs.Invalid, "cannot unfollow yourself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	following, ok := s.following[caller]
	if !ok {
		return errs.New(errs.Conflict, "not following anyone")
	}
	if !following.Has(target) {
		return errs.New(errs.Conflict, "not following this user")
	}

	following.Remove(target)
	if followers, ok := s.followers[target]; ok {
		followers.Remove(caller)
	}
	if p, ok := s.profiles[caller]; ok {
		decrement(&p.FollowingCount)
	}
	if p, ok := s.profiles[target]; ok {
		decrement(&p.FollowersCount)
	}

	s.logger.Debug("unfollow", zap.String("follower", caller), zap.String("followee", target))
	return nil
}

// IsFollowing reports whether caller follows target
func (s *Store) IsFollowing(caller, target string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.following[caller]
	return ok && set.Has(target)
}

// GetFollowers lists the identities following user, in follow order
func (s *Store) GetFollowers(user string, page, pageSize int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return listSet(s.followers[user], page, pageSize)
}

// GetFollowing lists the identities user follows, in follow order
func (s *Store) GetFollowing(user string, page, pageSize int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return listSet(s.following[user], page, pageSize)
}

func listSet(set *orderedSet, page, pageSize int) []string {
	if set == nil {
		return []string{}
	}
	return paginate(set.items, page, pageSize)
}
