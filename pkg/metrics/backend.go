package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded for backend requests.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeAuth    = "auth"
)

// BackendMetrics tracks REST calls issued by the resource façades.
type BackendMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	if reg == nil {
		return &BackendMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelsuite_backend_requests_total",
		Help: "Backend requests by resource and outcome.",
	}, []string{"resource", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotelsuite_backend_request_duration_seconds",
		Help:    "Backend request latency by resource.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"})
	reg.MustRegister(requests, latency)
	return &BackendMetrics{requests: requests, latency: latency}
}

// Observe records one finished request.
func (m *BackendMetrics) Observe(resource, outcome string, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	resource = normalizeLabel(resource)
	m.requests.WithLabelValues(resource, normalizeLabel(outcome)).Inc()
	m.latency.WithLabelValues(resource).Observe(elapsed.Seconds())
}
