package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/repositories"
	"github.com/anonto42/reelshare/backend/internal/store"
	"go.uber.org/zap"
)

// shutdownSaveTimeout bounds the final save made when Run returns
const shutdownSaveTimeout = 10 * time.Second

// Snapshotter persists the store through a SnapshotRepository
type Snapshotter struct {
	store    *store.Store
	repo     repositories.SnapshotRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
	interval time.Duration
}

// NewSnapshotter creates a new Snapshotter. m may be nil.
func NewSnapshotter(s *store.Store, repo repositories.SnapshotRepository, m *metrics.Metrics, logger *zap.Logger, interval time.Duration) *Snapshotter {
	return &Snapshotter{
		store:    s,
		repo:     repo,
		metrics:  m,
		logger:   logger,
		interval: interval,
	}
}

// Load restores the store from the latest saved snapshot. Having nothing saved
// yet is not an error.
func (s *Snapshotter) Load(ctx context.Context) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNoSnapshot) {
			s.logger.Info("no snapshot found, starting empty")
			return nil
		}
		return err
	}
	if err := s.store.Restore(snap); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}
	s.logger.Info("snapshot restored",
		zap.Time("taken_at", snap.TakenAt),
		zap.Int("profiles", len(snap.Profiles)),
		zap.Int("posts", len(snap.Posts)),
	)
	return nil
}

// Run saves on every interval until ctx is cancelled, then saves once more
func (s *Snapshotter) Run(ctx context.Context) {
	s.logger.Info("snapshotter started", zap.Duration("interval", s.interval))
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case <-ticker.C:
				_ = s.SaveOnce(ctx)
			}
		}
	} else {
		<-ctx.Done()
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownSaveTimeout)
	defer cancel()
	_ = s.SaveOnce(saveCtx)
	s.logger.Info("snapshotter stopped")
}

// SaveOnce takes and saves a single snapshot
func (s *Snapshotter) SaveOnce(ctx context.Context) error {
	snap := s.store.Snapshot()
	if err := s.repo.Save(ctx, snap); err != nil {
		s.observe("error")
		s.logger.Error("snapshot save failed", zap.Error(err))
		return err
	}
	s.observe("ok")
	s.logger.Debug("snapshot saved", zap.Int("posts", len(snap.Posts)))
	return nil
}

func (s *Snapshotter) observe(result string) {
	if s.metrics != nil {
		s.metrics.SnapshotSaves.WithLabelValues(result).Inc()
	}
}
