package metrics

import (
	"testing"

	"github.com/anonto42/reelshare/backend/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveStats(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveStats(store.TrendingStats{Profiles: 3, Posts: 5, ViralPosts: 1})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Entities.WithLabelValues("profiles")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Entities.WithLabelValues("posts")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Entities.WithLabelValues("viral_posts")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Entities.WithLabelValues("comments")))
}

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.Requests.WithLabelValues("GET", "/api/v1/feed", "200").Inc()
	m.Rejections.WithLabelValues("Conflict").Inc()

	n, err := testutil.GatherAndCount(reg, "reelshare_http_requests_total", "reelshare_rejected_operations_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Panics(t, func() { New(reg) }, "collectors can only be registered once per registry")
}
