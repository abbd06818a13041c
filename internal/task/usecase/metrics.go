package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "task_scheduler"

// Metrics groups the Prometheus collectors of the task use case.
type Metrics struct {
	created        *prometheus.CounterVec
	createDuration prometheus.Histogram
	listDuration   prometheus.Histogram
	stored         prometheus.Gauge
}

// NewMetrics registers the task collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		created: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "tasks_created_total",
				Help:      "Total number of Create operations by outcome",
			},
			[]string{"status"},
		),
		createDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "create_duration_seconds",
				Help:      "Duration of Create operation in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		listDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "list_duration_seconds",
				Help:      "Duration of List operation in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		stored: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "tasks_stored",
				Help:      "Number of tasks currently held",
			},
		),
	}
}

func (m *Metrics) observeCreate(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.createDuration.Observe(d.Seconds())
	if err != nil {
		m.created.WithLabelValues("error").Inc()
		return
	}
	m.created.WithLabelValues("success").Inc()
	m.stored.Inc()
}

func (m *Metrics) observeList(d time.Duration) {
	if m == nil {
		return
	}
	m.listDuration.Observe(d.Seconds())
}
