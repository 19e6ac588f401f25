package msprep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exported by a running engine,
// wired the way the teacher wires its digital-decode counters: one
// promauto-registered collector per concern, stored on a struct and passed
// down to the components that update it. A nil *Metrics is always safe to
// call into (every update site checks for nil).
type Metrics struct {
	spectraAdmitted  prometheus.Counter
	spectraRejected  *prometheus.CounterVec
	queriesProduced  prometheus.Counter
	bufferPoolInUse  prometheus.Gauge
	resultQueueDepth prometheus.Gauge
	preprocessErrors prometheus.Counter
	spectrumLatency  prometheus.Histogram
}

// NewMetrics registers the engine's collectors against reg. Pass
// prometheus.NewRegistry() in tests to avoid colliding with the default
// registry across package-level test runs.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		spectraAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "msprep_spectra_admitted_total",
			Help: "Spectra that passed the intake filters and were dispatched for preprocessing.",
		}),
		spectraRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "msprep_spectra_rejected_total",
			Help: "Spectra or candidate Z-states rejected before a Query was produced, by reason.",
		}, []string{"reason"}),
		queriesProduced: factory.NewCounter(prometheus.CounterOpts{
			Name: "msprep_queries_produced_total",
			Help: "Query results appended to the result queue.",
		}),
		bufferPoolInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name: "msprep_buffer_pool_slots_in_use",
			Help: "BufferPool slots currently acquired by an in-flight task.",
		}),
		resultQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "msprep_result_queue_depth",
			Help: "Number of Query results currently held in the result queue.",
		}),
		preprocessErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "msprep_preprocess_errors_total",
			Help: "Fatal errors a preprocessing worker latched into the error sink.",
		}),
		spectrumLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "msprep_spectrum_preprocess_seconds",
			Help:    "Wall-clock time to preprocess one spectrum's candidate Z-states.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
