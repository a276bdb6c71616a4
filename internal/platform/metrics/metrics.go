package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "matchtracker"

// Recorder holds the service's Prometheus collectors. A nil *Recorder is a
// valid no-op so packages can take one optionally.
type Recorder struct {
	registry         *prometheus.Registry
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	fallbacks        *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	rateLimited      prometheus.Counter
	circuitOpen      *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream provider requests by outcome.",
		}, []string{"provider", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Upstream provider request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Responses served from fixtures after an upstream failure.",
		}, []string{"sport", "operation"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by result.",
		}, []string{"result"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the per-IP limiter.",
		}),
		circuitOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upstream_circuit_open",
			Help:      "1 while a provider's circuit breaker is open, 0.5 while half open.",
		}, []string{"provider"}),
	}

	r.registry.MustRegister(
		r.upstreamRequests,
		r.upstreamDuration,
		r.fallbacks,
		r.cacheLookups,
		r.rateLimited,
		r.circuitOpen,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveUpstream(provider, outcome string, took time.Duration) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(provider, outcome).Inc()
	r.upstreamDuration.WithLabelValues(provider).Observe(took.Seconds())
}

func (r *Recorder) CountFallback(sport, operation string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(sport, operation).Inc()
}

func (r *Recorder) CountCacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

func (r *Recorder) CountRateLimited() {
	if r == nil {
		return
	}
	r.rateLimited.Inc()
}

// SetCircuitState records a breaker transition; state is "closed", "open"
// or "half_open".
func (r *Recorder) SetCircuitState(provider, state string) {
	if r == nil {
		return
	}
	value := 0.0
	switch state {
	case "open":
		value = 1
	case "half_open":
		value = 0.5
	}
	r.circuitOpen.WithLabelValues(provider).Set(value)
}
