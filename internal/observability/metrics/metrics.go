package metrics

import "github.com/prometheus/client_golang/prometheus"

// ModuleMetrics exposes counters for module list resolution.
type ModuleMetrics struct {
	resolvedTotal *prometheus.CounterVec
}

func NewModuleMetrics(reg prometheus.Registerer) *ModuleMetrics {
	m := &ModuleMetrics{
		resolvedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "modules",
			Name:      "resolved_total",
			Help:      "Module instances resolved, by type tag and status",
		}, []string{"type", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.resolvedTotal)
	return m
}

func (m *ModuleMetrics) ObserveResolve(typeTag, status string) {
	if m == nil {
		return
	}
	m.resolvedTotal.WithLabelValues(typeTag, status).Inc()
}

// BookingMetrics exposes counters/histograms for the booking pipeline.
type BookingMetrics struct {
	submissionsTotal *prometheus.CounterVec
	submitLatency    prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions, by outcome and failure cause",
		}, []string{"outcome", "cause"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "site",
			Subsystem: "booking",
			Name:      "submit_latency_seconds",
			Help:      "Latency of the full submission pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.submitLatency)
	return m
}

func (m *BookingMetrics) ObserveSubmission(outcome, cause string) {
	if m == nil {
		return
	}
	if cause == "" {
		cause = "none"
	}
	m.submissionsTotal.WithLabelValues(outcome, cause).Inc()
}

func (m *BookingMetrics) ObserveSubmitLatency(seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.Observe(seconds)
}

// ContentMetrics exposes counters for the rendered-page cache.
type ContentMetrics struct {
	cacheTotal *prometheus.CounterVec
}

func NewContentMetrics(reg prometheus.Registerer) *ContentMetrics {
	m := &ContentMetrics{
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Subsystem: "content",
			Name:      "render_cache_total",
			Help:      "Rendered-page cache lookups, by result",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.cacheTotal)
	return m
}

func (m *ContentMetrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheTotal.WithLabelValues(result).Inc()
}
