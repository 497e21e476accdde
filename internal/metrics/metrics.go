package metrics

import (
	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Requests      *prometheus.CounterVec
	Rejections    *prometheus.CounterVec
	Entities      *prometheus.GaugeVec
	SnapshotSaves *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reelshare_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"method", "route", "status"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reelshare_rejected_operations_total",
				Help: "Total number of store operations rejected, by failure kind",
			},
			[]string{"kind"},
		),
		Entities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reelshare_entities",
				Help: "Number of live entities per table at the last trending refresh",
			},
			[]string{"entity"},
		),
		SnapshotSaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reelshare_snapshot_saves_total",
				Help: "Total number of snapshot save attempts by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(m.Requests)
	reg.MustRegister(m.Rejections)
	reg.MustRegister(m.Entities)
	reg.MustRegister(m.SnapshotSaves)

	return m
}

// ObserveStats publishes the table sizes reported by a trending refresh
func (m *Metrics) ObserveStats(stats store.TrendingStats) {
	m.Entities.WithLabelValues("profiles").Set(float64(stats.Profiles))
	m.Entities.WithLabelValues("posts").Set(float64(stats.Posts))
	m.Entities.WithLabelValues("comments").Set(float64(stats.Comments))
	m.Entities.WithLabelValues("hashtags").Set(float64(stats.Hashtags))
	m.Entities.WithLabelValues("trending_posts").Set(float64(stats.Trending))
	m.Entities.WithLabelValues("viral_posts").Set(float64(stats.ViralPosts))
}
