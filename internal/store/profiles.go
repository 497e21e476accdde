package store

import (
	"context"

	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"go.uber.org/zap"
)

// GetOwnProfile returns the caller's profile, if registered
func (s *Store) GetOwnProfile(ctx context.Context, caller string) (*models.UserProfile, bool, error) {
	return s.GetProfile(ctx, caller, caller)
}

// GetProfile returns target's profile, if registered. The caller must be an authenticated user.
func (s *Store) GetProfile(ctx context.Context, caller, target string) (*models.UserProfile, bool, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[target]
	if !ok {
		return nil, false, nil
	}
	return cloneProfile(p), true, nil
}

// Register creates the caller's profile with zeroed counters
func (s *Store) Register(ctx context.Context, caller, username, bio, avatarRef string) (*models.UserProfile, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameOwner(username) != "" {
		return nil, errs.Newf(errs.Conflict, "username %q is already taken", username)
	}
	if _, ok := s.profiles[caller]; ok {
		return nil, errs.New(errs.Conflict, "profile already registered")
	}

	p := &models.UserProfile{
		Identity:  caller,
		Username:  username,
		Bio:       bio,
		AvatarRef: avatarRef,
		CreatedAt: s.now(),
	}
	s.putProfile(p)
	s.logger.Debug("profile registered", zap.String("identity", caller), zap.String("username", username))
	return cloneProfile(p), nil
}

// UpdateProfile replaces the caller's username, bio and avatar, keeping counters
// and creation time.
func (s *Store) UpdateProfile(ctx context.Context, caller, username, bio, avatarRef string) (*models.UserProfile, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if owner := s.usernameOwner(username); owner != "" && owner != caller {
		return nil, errs.Newf(errs.Conflict, "username %q is already taken", username)
	}
	p, ok := s.profiles[caller]
	if !ok {
		return nil, errs.New(errs.NotFound, "profile not found")
	}

	p.Username = username
	p.Bio = bio
	p.AvatarRef = avatarRef
	s.logger.Debug("profile updated", zap.String("identity", caller))
	return cloneProfile(p), nil
}

// SaveProfile upserts the full profile record for caller. The identity embedded
// in profile is ignored. Unlike UpdateProfile, username uniqueness is not checked.
func (s *Store) SaveProfile(ctx context.Context, caller string, profile models.UserProfile) (*models.UserProfile, error) {
	if err := s.requireUser(ctx, caller); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile.Identity = caller
	if existing, ok := s.profiles[caller]; ok {
		if profile.CreatedAt.IsZero() {
			profile.CreatedAt = existing.CreatedAt
		}
		*existing = profile
		s.logger.Debug("profile overwritten", zap.String("identity", caller))
		return cloneProfile(existing), nil
	}

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = s.now()
	}
	p := &profile
	s.putProfile(p)
	s.logger.Debug("profile saved", zap.String("identity", caller))
	return cloneProfile(p), nil
}

func (s *Store) putProfile(p *models.UserProfile) {
	if _, ok := s.profiles[p.Identity]; !ok {
		s.profileOrder = append(s.profileOrder, p.Identity)
	}
	s.profiles[p.Identity] = p
}

// usernameOwner returns the identity holding username, or "" if none does
func (s *Store) usernameOwner(username string) string {
	for _, id := range s.profileOrder {
		if s.profiles[id].Username == username {
			return id
		}
	}
	return ""
}
