// Package metrics defines the Prometheus collectors of the seed and
// discovery binaries. Every [Metrics] owns its registry so tests and
// binaries never share global state.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Seed run results.
const (
	ResultSuccess   = "success"
	ResultDryRun    = "dry_run"
	ResultInvalid   = "validation_failed"
	ResultDuplicate = "duplicate_key"
	ResultStoreDown = "store_unavailable"
	ResultError     = "error"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	seedRuns           *prometheus.CounterVec
	seedRecords        *prometheus.CounterVec
	seedDuration       prometheus.Histogram
	discoveryRequests  *prometheus.CounterVec
	configCacheLookups *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		seedRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gnap_seed_runs_total",
			Help: "Bootstrap runs by result",
		}, []string{"result"}),
		seedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gnap_seed_records_written_total",
			Help: "Documents written by bootstrap runs per collection",
		}, []string{"collection"}),
		seedDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gnap_seed_duration_seconds",
			Help:    "Duration of bootstrap runs",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		discoveryRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gnap_discovery_requests_total",
			Help: "Discovery document requests by status code",
		}, []string{"code"}),
		configCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gnap_config_cache_lookups_total",
			Help: "Service config cache lookups by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.seedRuns,
		m.seedRecords,
		m.seedDuration,
		m.discoveryRequests,
		m.configCacheLookups,
	)

	return m
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSeedRun records the outcome and duration of a bootstrap run.
func (m *Metrics) ObserveSeedRun(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.seedRuns.WithLabelValues(result).Inc()
	m.seedDuration.Observe(d.Seconds())
}

// AddRecordsWritten adds n written documents of collection.
func (m *Metrics) AddRecordsWritten(collection string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.seedRecords.WithLabelValues(collection).Add(float64(n))
}

// ObserveDiscoveryRequest counts a discovery response with status code.
func (m *Metrics) ObserveDiscoveryRequest(code int) {
	if m == nil {
		return
	}
	m.discoveryRequests.WithLabelValues(strconv.Itoa(code)).Inc()
}

// ObserveCacheLookup counts a service config cache lookup.
func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.configCacheLookups.WithLabelValues(result).Inc()
}

// Push sends the seed collectors to a Prometheus Pushgateway under job.
func (m *Metrics) Push(url, job string) error {
	if m == nil || url == "" {
		return nil
	}

	err := push.New(url, job).
		Collector(m.seedRuns).
		Collector(m.seedRecords).
		Collector(m.seedDuration).
		Push()
	if err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", url, err)
	}

	return nil
}
