// Package store holds the in-memory social graph and content tables.
//
// A Store is a single logical dataset. Every public operation runs to
// completion under one lock, so no caller ever observes a half-applied
// mutation (for example a like recorded without its counters).
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/anonto42/reelshare/backend/internal/auth"
	"github.com/anonto42/reelshare/backend/internal/errs"
	"github.com/anonto42/reelshare/backend/internal/models"
	"go.uber.org/zap"
)

// Store owns every entity table and the derived indices built from them
type Store struct {
	mu     sync.RWMutex
	authz  auth.Authorizer
	logger *zap.Logger
	now    func() time.Time

	profiles     map[string]*models.UserProfile
	profileOrder []string

	posts         map[int64]*models.Post
	comments      map[int64]*models.Comment
	nextPostID    int64
	nextCommentID int64

	likes     map[int64]*orderedSet
	following map[string]*orderedSet
	followers map[string]*orderedSet

	// tag -> posts, seeded when a post is created
	tagPosts map[string][]int64
	tagOrder []string
	// tag -> popularity, bumped by likes
	hashtags     map[string]int
	hashtagOrder []string

	features     map[string]*models.SocialFeature
	featureOrder []string

	// derived views rebuilt by RefreshTrending
	trendingPosts []models.TrendingPost
	topUsers      map[string]int
	engagement    map[int64]float64
	viral         map[int64]struct{}
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for mutation traces
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the time source used to stamp new records
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store that consults authz before every mutation
func New(authz auth.Authorizer, opts ...Option) *Store {
	s := &Store{
		authz:  authz,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	s.reset()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) reset() {
	s.profiles = make(map[string]*models.UserProfile)
	s.profileOrder = nil
	s.posts = make(map[int64]*models.Post)
	s.comments = make(map[int64]*models.Comment)
	s.nextPostID = 1
	s.nextCommentID = 1
	s.likes = make(map[int64]*orderedSet)
	s.following = make(map[string]*orderedSet)
	s.followers = make(map[string]*orderedSet)
	s.tagPosts = make(map[string][]int64)
	s.tagOrder = nil
	s.hashtags = make(map[string]int)
	s.hashtagOrder = nil
	s.features = make(map[string]*models.SocialFeature)
	s.featureOrder = nil
	s.trendingPosts = nil
	s.topUsers = make(map[string]int)
	s.engagement = make(map[int64]float64)
	s.viral = make(map[int64]struct{})
}

func (s *Store) requireUser(ctx context.Context, caller string) error {
	if !s.authz.HasCapability(ctx, caller, auth.RoleUser) {
		return errs.New(errs.Unauthorized, "caller is not an authenticated user")
	}
	return nil
}

func decrement(v *int) {
	if *v > 0 {
		*v--
	}
}

func cloneProfile(p *models.UserProfile) *models.UserProfile {
	out := *p
	return &out
}

func clonePost(p *models.Post) models.Post {
	out := *p
	out.Hashtags = slices.Clone(p.Hashtags)
	if p.Effect != nil {
		effect := *p.Effect
		out.Effect = &effect
	}
	return out
}

func cloneFeature(f *models.SocialFeature) models.SocialFeature {
	out := *f
	out.RelatedIDs = slices.Clone(f.RelatedIDs)
	return out
}
