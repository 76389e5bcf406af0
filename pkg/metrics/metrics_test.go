package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestPollJobMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPollJobMetrics(reg)
	job := "dashboard-refresh"
	metrics.ObserveDuration(job, 250*time.Millisecond)
	metrics.IncSuccess(job)
	metrics.IncFailure(job)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "hotelsuite_poll_job_success_total", "job", job); err != nil {
		t.Fatalf("fetch success: %v", err)
	} else if got != 1 {
		t.Fatalf("expected success=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "hotelsuite_poll_job_failure_total", "job", job); err != nil {
		t.Fatalf("fetch failure: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failure=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "hotelsuite_poll_job_duration_seconds", "job", job); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestFurnitureMetricsCountsMutations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFurnitureMetrics(reg)
	m.IncMutation("add")
	m.IncMutation("add")
	m.IncMutation("")
	m.IncWriteFailure("redis")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "hotelsuite_furniture_mutations_total", "op", "add"); err != nil || got != 2 {
		t.Fatalf("expected add=2, got %f (%v)", got, err)
	}
	if got, err := fetchCounterValue(mfs, "hotelsuite_furniture_mutations_total", "op", "unknown"); err != nil || got != 1 {
		t.Fatalf("expected empty op to map to unknown, got %f (%v)", got, err)
	}
	if got, err := fetchCounterValue(mfs, "hotelsuite_furniture_write_failures_total", "backend", "redis"); err != nil || got != 1 {
		t.Fatalf("expected redis failure=1, got %f (%v)", got, err)
	}
}

func TestBackendMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBackendMetrics(reg)
	m.Observe("personnel", OutcomeError, 10*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	mf := findMetricFamily(mfs, "hotelsuite_backend_requests_total")
	if mf == nil || len(mf.GetMetric()) != 1 {
		t.Fatalf("expected one request series")
	}
	labels := mf.GetMetric()[0].GetLabel()
	if !matchesLabel(labels, "resource", "personnel") || !matchesLabel(labels, "outcome", OutcomeError) {
		t.Fatalf("unexpected labels %v", labels)
	}
	if got, err := fetchHistogramSum(mfs, "hotelsuite_backend_request_duration_seconds", "resource", "personnel"); err != nil || got <= 0 {
		t.Fatalf("expected latency sum > 0, got %f (%v)", got, err)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	NewPollJobMetrics(nil).IncSuccess("x")
	NewFurnitureMetrics(nil).IncMutation("x")
	NewBackendMetrics(nil).Observe("x", OutcomeSuccess, time.Second)
	var m *FurnitureMetrics
	m.IncWriteFailure("x")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
