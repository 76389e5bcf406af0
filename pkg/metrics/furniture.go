package metrics

import "github.com/prometheus/client_golang/prometheus"

// FurnitureMetrics counts store mutations and their write-backs.
type FurnitureMetrics struct {
	mutations  *prometheus.CounterVec
	writeFails *prometheus.CounterVec
}

func NewFurnitureMetrics(reg prometheus.Registerer) *FurnitureMetrics {
	if reg == nil {
		return &FurnitureMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelsuite_furniture_mutations_total",
		Help: "Furniture store mutations by operation.",
	}, []string{"op"})
	writeFails := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelsuite_furniture_write_failures_total",
		Help: "Failed furniture write-backs by storage backend.",
	}, []string{"backend"})
	reg.MustRegister(mutations, writeFails)
	return &FurnitureMetrics{mutations: mutations, writeFails: writeFails}
}

// IncMutation records one store mutation such as "add" or "status".
func (m *FurnitureMetrics) IncMutation(op string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

func (m *FurnitureMetrics) IncWriteFailure(backend string) {
	if m == nil || m.writeFails == nil {
		return
	}
	m.writeFails.WithLabelValues(normalizeLabel(backend)).Inc()
}
