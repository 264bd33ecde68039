package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pad/internal/structures"
)

// swapRegistry replaces the default prometheus registry for the duration of
// a test, so repeated NewMetricsProvider calls don't collide on names.
func swapRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	origRegisterer := prometheus.DefaultRegisterer
	origGatherer := prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origRegisterer
		prometheus.DefaultGatherer = origGatherer
	})
	return reg
}

func metricsConfig(enabled bool) *structures.Config {
	return &structures.Config{Metrics: structures.MetricsConfig{Enabled: enabled}}
}

func TestNewMetricsProvider_Disabled(t *testing.T) {
	mp := NewMetricsProvider(metricsConfig(false))

	_, ok := mp.(*noopMetrics)
	assert.True(t, ok)

	// noop methods must not panic
	mp.IncRequestsTotal("/api/v1/users", 200)
	mp.ObserveRequestDuration("/api/v1/users", time.Millisecond)
	mp.IncCacheHits()
	mp.IncCacheMisses()
	mp.ObserveSourceLoadDuration("presence_csv", time.Millisecond)
	mp.SetDatasetRecords("presence_csv", 42)
}

func TestNewMetricsProvider_RegistersCollectors(t *testing.T) {
	reg := swapRegistry(t)
	mp := NewMetricsProvider(metricsConfig(true))

	mp.IncRequestsTotal("/api/v1/users", 200)
	mp.ObserveRequestDuration("/api/v1/users", 15*time.Millisecond)
	mp.IncCacheHits()
	mp.IncCacheMisses()
	mp.ObserveSourceLoadDuration("presence_csv", 5*time.Millisecond)
	mp.SetDatasetRecords("users_xml", 12)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"pad_requests_total",
		"pad_request_duration_seconds",
		"pad_cache_hits_total",
		"pad_cache_misses_total",
		"pad_source_load_duration_seconds",
		"pad_dataset_records",
	} {
		assert.True(t, names[want], "missing metric %s", want)
	}
}

func TestNewMetricsProvider_StatusLabelBuckets(t *testing.T) {
	reg := swapRegistry(t)
	mp := NewMetricsProvider(metricsConfig(true))

	mp.IncRequestsTotal("/api/v1/users", 200)
	mp.IncRequestsTotal("/api/v1/users", 204)
	mp.IncRequestsTotal("/api/v1/users", 404)

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "pad_requests_total" {
			continue
		}
		counts := make(map[string]float64)
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "status" {
					counts[l.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
		assert.Equal(t, 2.0, counts["2xx"])
		assert.Equal(t, 1.0, counts["4xx"])
		return
	}
	t.Fatal("pad_requests_total not gathered")
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", httpStatusBucket(101))
	assert.Equal(t, "2xx", httpStatusBucket(200))
	assert.Equal(t, "3xx", httpStatusBucket(302))
	assert.Equal(t, "4xx", httpStatusBucket(404))
	assert.Equal(t, "5xx", httpStatusBucket(503))
}
