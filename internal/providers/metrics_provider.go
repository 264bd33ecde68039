package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pad/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveSourceLoadDuration(source string, duration time.Duration)
	SetDatasetRecords(source string, count int)
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	sourceLoadDuration *prometheus.HistogramVec
	datasetRecords     *prometheus.GaugeVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveSourceLoadDuration(source string, duration time.Duration) {
	m.sourceLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *MetricsProvider) SetDatasetRecords(source string, count int) {
	m.datasetRecords.WithLabelValues(source).Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pad_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pad_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pad_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pad_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		sourceLoadDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pad_source_load_duration_seconds",
			Help:    "Duration of source file loads in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),

		datasetRecords: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pad_dataset_records",
			Help: "Number of records loaded per source",
		}, []string{"source"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                      {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)      {}
func (n *noopMetrics) IncCacheHits()                                         {}
func (n *noopMetrics) IncCacheMisses()                                       {}
func (n *noopMetrics) ObserveSourceLoadDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) SetDatasetRecords(_ string, _ int)                     {}
