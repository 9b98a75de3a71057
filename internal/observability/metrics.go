package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "meteoraid"

// Metrics holds the Prometheus counters, histograms, and gauges for a session run.
type Metrics struct {
	LinesRead        prometheus.Counter
	EventsRegistered *prometheus.CounterVec // labels: event={period_start,clouds,meteor,...}
	PeriodsFinalized prometheus.Counter
	BuildFailures    *prometheus.CounterVec // labels: reason={no_lm,in_break,syntax,...}
	MeteorsRecorded  *prometheus.CounterVec // labels: shower={PER,SPO,...}
	RunDuration      prometheus.Histogram
	LastRunSuccess   prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		LinesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_read_total",
			Help:      "Total observation log lines read.",
		}),
		EventsRegistered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_registered_total",
			Help:      "Observation events accepted by the session builder, by kind.",
		}, []string{"event"}),
		PeriodsFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "periods_finalized_total",
			Help:      "Observing periods that passed validation.",
		}),
		BuildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_failures_total",
			Help:      "Runs aborted, by failure reason.",
		}, []string{"reason"}),
		MeteorsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meteors_recorded_total",
			Help:      "Meteors in finalized periods, by shower code.",
		}, []string{"shower"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete read-build-report run.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 when the last run produced a session, 0 when it failed.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.LinesRead,
		m.EventsRegistered,
		m.PeriodsFinalized,
		m.BuildFailures,
		m.MeteorsRecorded,
		m.RunDuration,
		m.LastRunSuccess,
	}
}

// NewMetrics creates and registers all run metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsWithRegistry creates metrics registered with reg instead of the
// default registry.
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return NewMetricsWithRegistry(prometheus.NewRegistry())
}
