package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "codetime"

// Metrics holds the aggregation collectors. A nil *Metrics records nothing.
type Metrics struct {
	runsTotal      *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	bucketsFetched prometheus.Histogram
	chartsWritten  *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregation_runs_total",
			Help:      "Aggregation runs by mode and result.",
		}, []string{"mode", "result"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Wall time of aggregation runs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		bucketsFetched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_buckets",
			Help:      "Buckets fetched per run.",
			Buckets:   []float64{1, 3, 7, 14, 30, 90, 365},
		}),
		chartsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charts_written_total",
			Help:      "Chart configs written to the store by field.",
		}, []string{"field"}),
	}
	reg.MustRegister(m.runsTotal, m.runDuration, m.bucketsFetched, m.chartsWritten)
	return m
}

func (m *Metrics) ObserveRun(mode string, ok bool, took time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.runsTotal.WithLabelValues(mode, result).Inc()
	m.runDuration.WithLabelValues(mode).Observe(took.Seconds())
}

func (m *Metrics) ObserveBuckets(n int) {
	if m == nil {
		return
	}
	m.bucketsFetched.Observe(float64(n))
}

func (m *Metrics) ChartWritten(field string) {
	if m == nil {
		return
	}
	m.chartsWritten.WithLabelValues(field).Inc()
}
