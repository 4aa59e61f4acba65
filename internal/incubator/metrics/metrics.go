package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the incubator service.
// Tracks parse outcomes, resolved states, page lookups and registry reloads.
type Metrics struct {
	ParseResults       *prometheus.CounterVec
	StatusResults      *prometheus.CounterVec
	PageLookupDuration prometheus.Histogram
	PageCacheResults   *prometheus.CounterVec
	BreakerState       *prometheus.GaugeVec
	RegistryReloads    *prometheus.CounterVec
}

// New creates a new Metrics instance registered with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the metrics with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ParseResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incubator_prefix_parse_total",
			Help: "Prefix parses by mode and result code",
		}, []string{"mode", "result"}),
		StatusResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incubator_wiki_status_total",
			Help: "Resolved wiki lifecycle states",
		}, []string{"state"}),
		PageLookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "incubator_page_lookup_duration_seconds",
			Help:    "Duration of page existence lookups against the backing index",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		PageCacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incubator_page_cache_total",
			Help: "Page existence cache hits and misses by cache layer",
		}, []string{"layer", "result"}),
		BreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "incubator_page_breaker_open",
			Help: "1 when the page index circuit breaker is open",
		}, []string{"name"}),
		RegistryReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "incubator_registry_reloads_total",
			Help: "Registry reload attempts by result",
		}, []string{"result"}),
	}
}

// IncrementParse records a parse result; result is "ok" or the error code.
func (m *Metrics) IncrementParse(mode, result string) {
	if m == nil {
		return
	}
	m.ParseResults.WithLabelValues(mode, result).Inc()
}

// IncrementStatus records a resolved lifecycle state.
func (m *Metrics) IncrementStatus(state string) {
	if m == nil {
		return
	}
	m.StatusResults.WithLabelValues(state).Inc()
}

// ObservePageLookup records the duration of a backing index lookup.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObservePageLookup(start time.Time) {
	if m == nil {
		return
	}
	m.PageLookupDuration.Observe(time.Since(start).Seconds())
}

// IncrementCacheHit records a cache hit in the given layer ("lru", "redis").
func (m *Metrics) IncrementCacheHit(layer string) {
	if m == nil {
		return
	}
	m.PageCacheResults.WithLabelValues(layer, "hit").Inc()
}

// IncrementCacheMiss records a cache miss in the given layer.
func (m *Metrics) IncrementCacheMiss(layer string) {
	if m == nil {
		return
	}
	m.PageCacheResults.WithLabelValues(layer, "miss").Inc()
}

// SetBreakerOpen records whether the named breaker is open.
func (m *Metrics) SetBreakerOpen(name string, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.BreakerState.WithLabelValues(name).Set(v)
}

// IncrementReload records a registry reload attempt.
func (m *Metrics) IncrementReload(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.RegistryReloads.WithLabelValues(result).Inc()
}
