// Package metrics exposes Prometheus metrics for the HTTP layer and the
// hiring pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

const namespace = "hiretrack"

// Collector owns its own registry so tests and multiple instances never
// collide on the global one.
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	stageTransitions *prometheus.CounterVec
	notesAdded       prometheus.Counter
	searches         *prometheus.CounterVec
	searchResults    prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
	eventsPublished  *prometheus.CounterVec
}

// NewCollector creates and registers all metrics, including the Go runtime
// and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		stageTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_transitions_total",
			Help:      "Candidate stage moves by source and target stage.",
		}, []string{"from", "to"}),
		notesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_added_total",
			Help:      "Notes persisted on candidates.",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_searches_total",
			Help:      "Candidate searches by scope (posting or all).",
		}, []string{"scope"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidate_search_results",
			Help:      "Number of candidates returned per search.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_cache_lookups_total",
			Help:      "Dashboard summary cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Pipeline events handed to the publisher by type and outcome.",
		}, []string{"type", "outcome"}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.stageTransitions,
		c.notesAdded,
		c.searches,
		c.searchResults,
		c.cacheLookups,
		c.eventsPublished,
	)

	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveHTTP records one finished request.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordStageTransition counts a persisted stage move.
func (c *Collector) RecordStageTransition(from, to domain.Stage) {
	c.stageTransitions.WithLabelValues(from.Label(), to.Label()).Inc()
}

// RecordNoteAdded counts a persisted note.
func (c *Collector) RecordNoteAdded() {
	c.notesAdded.Inc()
}

// RecordSearch counts a search and the size of its result.
func (c *Collector) RecordSearch(scoped bool, results int) {
	scope := "all"
	if scoped {
		scope = "posting"
	}
	c.searches.WithLabelValues(scope).Inc()
	c.searchResults.Observe(float64(results))
}

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// RecordCacheLookup counts a summary cache lookup.
func (c *Collector) RecordCacheLookup(result string) {
	c.cacheLookups.WithLabelValues(result).Inc()
}

// RecordEventPublished counts a publish attempt.
func (c *Collector) RecordEventPublished(t domain.EventType, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.eventsPublished.WithLabelValues(string(t), outcome).Inc()
}
