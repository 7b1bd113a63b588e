// Package metrics provides Prometheus metrics for the pucktally pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a pipeline run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Ingestion metrics - what the adapters pulled in
	playersScraped prometheus.Counter
	rosterEntries  prometheus.Counter

	// Matching metrics - join quality between the two datasets
	playersMatched   prometheus.Counter
	playersUnmatched prometheus.Counter
	nameCollisions   prometheus.Counter

	// Fetch metrics - outbound HTTP by source
	fetchRequests *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec

	// Report metrics
	reportBuildDuration prometheus.Histogram
	teamsRanked         prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pucktally",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.playersScraped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_scraped_total",
		Help:      "Total number of Olympic players with points parsed from the stats site",
	})

	m.rosterEntries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_entries_total",
		Help:      "Total number of NHL roster entries fetched",
	})

	m.playersMatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_matched_total",
		Help:      "Total number of Olympic players matched to an NHL roster",
	})

	m.playersUnmatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_unmatched_total",
		Help:      "Total number of Olympic players without an NHL roster entry (expected for European-league players)",
	})

	m.nameCollisions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "name_collisions_total",
		Help:      "Total number of roster entries dropped because another entry claimed the same normalized name",
	})

	m.fetchRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_requests_total",
			Help:      "Total number of outbound HTTP requests by source",
		},
		[]string{"source"},
	)

	m.fetchErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_errors_total",
			Help:      "Total number of failed fetches (after retries) by source",
		},
		[]string{"source"},
	)

	m.fetchDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_duration_seconds",
			Help:      "Outbound fetch duration in seconds by source",
			Buckets:   m.histogramBuckets,
		},
		[]string{"source"},
	)

	m.reportBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_build_duration_seconds",
		Help:      "End-to-end report build duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.teamsRanked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_ranked",
		Help:      "Number of NHL teams appearing in the ranked report",
	})
}

// Package-level helpers record on the global manager.

// AddPlayersScraped counts players parsed from one stats page.
func AddPlayersScraped(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.playersScraped.Add(float64(n))
	}
}

// AddRosterEntries counts entries fetched from one team roster.
func AddRosterEntries(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.rosterEntries.Add(float64(n))
	}
}

// AddPlayersMatched counts players joined to a roster entry.
func AddPlayersMatched(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.playersMatched.Add(float64(n))
	}
}

// AddPlayersUnmatched counts players excluded from aggregation.
func AddPlayersUnmatched(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.playersUnmatched.Add(float64(n))
	}
}

// AddNameCollisions counts roster entries dropped by first-seen-wins.
func AddNameCollisions(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.nameCollisions.Add(float64(n))
	}
}

// RecordFetch records one outbound request and its duration.
func RecordFetch(source string, seconds float64) {
	if globalManager.enabled {
		globalManager.fetchRequests.WithLabelValues(source).Inc()
		globalManager.fetchDuration.WithLabelValues(source).Observe(seconds)
	}
}

// RecordFetchError records one fetch that failed after all retries.
func RecordFetchError(source string) {
	if globalManager.enabled {
		globalManager.fetchErrors.WithLabelValues(source).Inc()
	}
}

// RecordReportBuildDuration records the end-to-end pipeline duration.
func RecordReportBuildDuration(seconds float64) {
	if globalManager.enabled {
		globalManager.reportBuildDuration.Observe(seconds)
	}
}

// UpdateTeamsRanked sets the number of teams in the final report.
func UpdateTeamsRanked(count int) {
	if globalManager.enabled {
		globalManager.teamsRanked.Set(float64(count))
	}
}

// GetRegistry returns the custom registry, e.g. for gathering a run
// summary before exit.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Snapshot gathers current counter and gauge values keyed by metric
// name. Histograms are skipped; the batch binary logs this at shutdown.
func Snapshot() map[string]float64 {
	out := make(map[string]float64)
	families, err := customRegistry.Gather()
	if err != nil {
		return out
	}
	for _, fam := range families {
		var total float64
		for _, metric := range fam.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				total += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				total += metric.GetGauge().GetValue()
			default:
				continue
			}
		}
		out[fam.GetName()] = total
	}
	return out
}
