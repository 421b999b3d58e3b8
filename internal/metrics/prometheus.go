package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements Recorder with lazily registered collectors.
type Prometheus struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	operations         *prometheus.CounterVec
	latency            *prometheus.HistogramVec
	pagesMarked        prometheus.Counter
	rangesMaterialized prometheus.Counter
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus builds a recorder registering into reg (the default
// registerer when nil) under namespace ("workbook" when empty).
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "workbook"
	}
	return &Prometheus{reg: reg, namespace: namespace}
}

func (p *Prometheus) ensureRegistered() {
	p.once.Do(func() {
		p.operations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "service",
			Name:      "operations_total",
			Help:      "Service operations by name and outcome.",
		}, []string{"op", "outcome"})

		p.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "service",
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"})

		p.pagesMarked = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "pages",
			Name:      "marked_total",
			Help:      "Page rows written by the completion operation.",
		})

		p.rangesMaterialized = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ranges",
			Name:      "materialized_total",
			Help:      "Page range rows created by assignment reconciliation.",
		})

		p.reg.MustRegister(p.operations, p.latency, p.pagesMarked, p.rangesMaterialized)
	})
}

func (p *Prometheus) RecordOperation(op string, outcome string, duration time.Duration) {
	p.ensureRegistered()
	p.operations.WithLabelValues(op, outcome).Inc()
	p.latency.WithLabelValues(op).Observe(duration.Seconds())
}

func (p *Prometheus) AddPagesMarked(n int) {
	p.ensureRegistered()
	p.pagesMarked.Add(float64(n))
}

func (p *Prometheus) AddRangesMaterialized(n int) {
	p.ensureRegistered()
	p.rangesMaterialized.Add(float64(n))
}
