package jobs

import (
	"context"
	"time"

	"github.com/anonto42/reelshare/backend/internal/metrics"
	"github.com/anonto42/reelshare/backend/internal/store"
	"go.uber.org/zap"
)

// TrendingAggregator periodically rebuilds the store's derived analytics tables
type TrendingAggregator struct {
	store    *store.Store
	metrics  *metrics.Metrics
	logger   *zap.Logger
	interval time.Duration
	limit    int
}

// NewTrendingAggregator creates a new TrendingAggregator. m may be nil.
func NewTrendingAggregator(s *store.Store, m *metrics.Metrics, logger *zap.Logger, interval time.Duration, limit int) *TrendingAggregator {
	return &TrendingAggregator{
		store:    s,
		metrics:  m,
		logger:   logger,
		interval: interval,
		limit:    limit,
	}
}

// Run refreshes on every interval until ctx is cancelled
func (a *TrendingAggregator) Run(ctx context.Context) {
	a.logger.Info("trending aggregator started", zap.Duration("interval", a.interval), zap.Int("limit", a.limit))
	Every(ctx, a.interval, func(context.Context) { a.RefreshOnce() })
	a.logger.Info("trending aggregator stopped")
}

// RefreshOnce performs a single refresh pass
func (a *TrendingAggregator) RefreshOnce() store.TrendingStats {
	start := time.Now()
	stats := a.store.RefreshTrending(a.limit)
	if a.metrics != nil {
		a.metrics.ObserveStats(stats)
	}
	a.logger.Info("trending refreshed",
		zap.Int("posts", stats.Posts),
		zap.Int("trending", stats.Trending),
		zap.Int("viral", stats.ViralPosts),
		zap.Duration("took", time.Since(start)),
	)
	return stats
}
