package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusReporter exposes the runs as Prometheus metrics
type PrometheusReporter struct {
	runs          *prometheus.CounterVec
	phaseDuration *prometheus.HistogramVec
	closed        prometheus.Gauge
	joins         prometheus.Gauge
	matrixPruned  prometheus.Gauge
	frequentItems prometheus.Gauge
	transactions  prometheus.Gauge
	peakMemory    prometheus.Gauge
	elapsed       prometheus.Gauge
}

// NewPrometheusReporter registers the metrics on _reg_
func NewPrometheusReporter(reg prometheus.Registerer) *PrometheusReporter {
	return &PrometheusReporter{
		runs: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "gocharm_runs_total",
			Help: "Number of completed mining runs.",
		}, []string{"representation"}),
		phaseDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gocharm_phase_duration_seconds",
			Help:    "Time spent in each phase of a mining run.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"phase"}),
		closed: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gocharm_closed_itemsets",
			Help: "Closed itemsets found by the last run.",
		}),
		joins: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gocharm_joins",
			Help: "Tidset joins computed by the last run.",
		}),
		matrixPruned: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gocharm_matrix_pruned_pairs",
			Help: "Item pairs skipped by the triangular matrix in the last run.",
		}),
		frequentItems: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gocharm_frequent_items",
			Help: "Frequent single items in the last run.",
		}),
		transactions: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gocharm_transactions",
			Help: "Transactions in the database of the last run.",
		}),
		peakMemory: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gocharm_peak_memory_bytes",
			Help: "Highest heap usage sampled during the last run.",
		}),
		elapsed: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "gocharm_run_duration_seconds",
			Help: "Duration of the last run.",
		}),
	}
}

func (p *PrometheusReporter) PhaseDone(phase string, d time.Duration) {
	p.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (p *PrometheusReporter) RunDone(summary Summary) {
	p.runs.WithLabelValues(summary.Representation).Inc()
	p.closed.Set(float64(summary.Closed))
	p.joins.Set(float64(summary.Joins))
	p.matrixPruned.Set(float64(summary.MatrixPruned))
	p.frequentItems.Set(float64(summary.FrequentItems))
	p.transactions.Set(float64(summary.Transactions))
	p.peakMemory.Set(float64(summary.PeakMemory))
	p.elapsed.Set(summary.Elapsed.Seconds())
}
