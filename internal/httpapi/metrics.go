package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors. Each Metrics owns its
// registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	estimatesTotal    *prometheus.CounterVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	rateLimited       prometheus.Counter
	cacheEvicted      prometheus.Counter
	cacheEntries      prometheus.Gauge
}

// NewMetrics creates and registers all collectors, including the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solarfocus_http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "solarfocus_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		estimatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solarfocus_estimates_total",
			Help: "Estimates served, by payback status.",
		}, []string{"payback_status"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solarfocus_cache_hits_total",
			Help: "Estimates served from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solarfocus_cache_misses_total",
			Help: "Estimates computed because no cache entry existed.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solarfocus_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter.",
		}),
		cacheEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solarfocus_cache_evicted_total",
			Help: "Expired estimates removed from the in-memory cache by the sweeper.",
		}),
		cacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarfocus_cache_entries",
			Help: "Estimates held by the in-memory cache after the last sweep.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.estimatesTotal,
		m.cacheHits,
		m.cacheMisses,
		m.rateLimited,
		m.cacheEvicted,
		m.cacheEntries,
	)
	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// WrapHandler records request count and latency under route.
func (m *Metrics) WrapHandler(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		if m != nil {
			m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
			m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveEstimate counts a served estimate and whether it came from cache.
func (m *Metrics) ObserveEstimate(status string, cached bool) {
	if m == nil {
		return
	}
	m.estimatesTotal.WithLabelValues(status).Inc()
	if cached {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// RateLimited counts a rejected request.
func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// ObserveSweep records one cache sweep.
func (m *Metrics) ObserveSweep(removed, remaining int) {
	if m == nil {
		return
	}
	m.cacheEvicted.Add(float64(removed))
	m.cacheEntries.Set(float64(remaining))
}
