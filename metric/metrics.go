// Package metric exposes Prometheus instrumentation for the conversion
// pipeline. A Metrics value owns its own registry so tests and embedded
// use never collide with the global default registry.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all pipeline-level metrics.
type Metrics struct {
	registry *prometheus.Registry

	DocumentsConverted *prometheus.CounterVec
	ParseFailures      *prometheus.CounterVec
	TriplesParsed      prometheus.Counter
	TablesGenerated    prometheus.Counter
	RowsLoaded         prometheus.Counter
	EdgesLoaded        prometheus.Counter
	ConvertDuration    *prometheus.HistogramVec
	ArtifactsPublished *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with all pipeline metrics
// registered on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		DocumentsConverted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semview",
				Subsystem: "convert",
				Name:      "documents_total",
				Help:      "Total number of RDF documents converted",
			},
			[]string{"format", "status"},
		),

		ParseFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semview",
				Subsystem: "convert",
				Name:      "parse_failures_total",
				Help:      "Total number of RDF parse failures",
			},
			[]string{"format"},
		),

		TriplesParsed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semview",
				Subsystem: "convert",
				Name:      "triples_total",
				Help:      "Total number of triples parsed from RDF documents",
			},
		),

		TablesGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semview",
				Subsystem: "convert",
				Name:      "tables_total",
				Help:      "Total number of relational tables generated",
			},
		),

		RowsLoaded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semview",
				Subsystem: "load",
				Name:      "rows_total",
				Help:      "Total number of instance rows loaded",
			},
		),

		EdgesLoaded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semview",
				Subsystem: "load",
				Name:      "edges_total",
				Help:      "Total number of relationship edges loaded",
			},
		),

		ConvertDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semview",
				Subsystem: "convert",
				Name:      "duration_seconds",
				Help:      "Document conversion duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		ArtifactsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semview",
				Subsystem: "publish",
				Name:      "artifacts_total",
				Help:      "Total number of artifacts published to NATS",
			},
			[]string{"subject"},
		),
	}

	m.registry.MustRegister(
		m.DocumentsConverted,
		m.ParseFailures,
		m.TriplesParsed,
		m.TablesGenerated,
		m.RowsLoaded,
		m.EdgesLoaded,
		m.ConvertDuration,
		m.ArtifactsPublished,
	)
	return m
}

// Registry returns the underlying Prometheus registry for HTTP exposure.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordConversion increments the converted document counter.
func (m *Metrics) RecordConversion(format, status string) {
	m.DocumentsConverted.WithLabelValues(format, status).Inc()
}

// RecordParseFailure increments the parse failure counter.
func (m *Metrics) RecordParseFailure(format string) {
	m.ParseFailures.WithLabelValues(format).Inc()
}

// RecordTriples adds to the parsed triple counter.
func (m *Metrics) RecordTriples(n int) {
	m.TriplesParsed.Add(float64(n))
}

// RecordTables adds to the generated table counter.
func (m *Metrics) RecordTables(n int) {
	m.TablesGenerated.Add(float64(n))
}

// RecordLoad adds to the row and edge counters.
func (m *Metrics) RecordLoad(rows, edges int) {
	m.RowsLoaded.Add(float64(rows))
	m.EdgesLoaded.Add(float64(edges))
}

// RecordDuration records how long an operation took.
func (m *Metrics) RecordDuration(operation string, d time.Duration) {
	m.ConvertDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordPublish increments the published artifact counter.
func (m *Metrics) RecordPublish(subject string) {
	m.ArtifactsPublished.WithLabelValues(subject).Inc()
}
