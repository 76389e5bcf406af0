package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PollJobMetrics records metadata for background refresh jobs.
type PollJobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewPollJobMetrics registers the refresh job metrics on the provided registerer.
func NewPollJobMetrics(reg prometheus.Registerer) *PollJobMetrics {
	if reg == nil {
		return &PollJobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotelsuite_poll_job_duration_seconds",
		Help:    "Duration of refresh jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelsuite_poll_job_success_total",
		Help: "Successful refresh job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelsuite_poll_job_failure_total",
		Help: "Failed refresh job executions.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure)
	return &PollJobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named job.
func (c *PollJobMetrics) ObserveDuration(job string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (c *PollJobMetrics) IncSuccess(job string) {
	if c == nil || c.success == nil {
		return
	}
	c.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (c *PollJobMetrics) IncFailure(job string) {
	if c == nil || c.failure == nil {
		return
	}
	c.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
