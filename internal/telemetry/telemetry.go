// Package telemetry provides OpenTelemetry instrumentation for the miner.
// It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "rijal"

// Judgement category labels.
const (
	CategoryTaadil       = "taadil"
	CategoryJarh         = "jarh"
	CategoryUnclassified = "unclassified"
)

// Relation kind labels.
const (
	RelationTeacher = "teacher"
	RelationStudent = "student"
)

// Metrics holds all miner Prometheus metrics.
type Metrics struct {
	// Page metrics
	PagesProcessed prometheus.Counter
	PagesSkipped   *prometheus.CounterVec
	PageDuration   prometheus.Histogram

	// Entry metrics
	EntriesSegmented prometheus.Counter
	EntriesDropped   prometheus.Counter
	RecordsEmitted   prometheus.Counter

	// Extraction metrics
	JudgementsTotal *prometheus.CounterVec
	RelationsTotal  *prometheus.CounterVec
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}

	m.PagesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rijal_pages_processed_total",
		Help: "Total pages run through the extraction pipeline",
	})
	m.PagesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rijal_pages_skipped_total",
		Help: "Total pages skipped before extraction, by reason",
	}, []string{"reason"})
	m.PageDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rijal_page_duration_seconds",
		Help:    "Time to extract a single page",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	})

	m.EntriesSegmented = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rijal_entries_segmented_total",
		Help: "Total biography entries produced by segmentation",
	})
	m.EntriesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rijal_entries_dropped_total",
		Help: "Total entries dropped for lacking an extractable name",
	})
	m.RecordsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rijal_records_emitted_total",
		Help: "Total narrator records emitted",
	})

	m.JudgementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rijal_judgements_total",
		Help: "Total judgements extracted, by category (taadil, jarh, unclassified)",
	}, []string{"category"})
	m.RelationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rijal_relations_total",
		Help: "Total relation names extracted, by kind (teacher, student)",
	}, []string{"kind"})

	return m
}

// RecordPage records metrics for one extracted page.
func (p *Provider) RecordPage(ctx context.Context, duration time.Duration, entries, records int) {
	p.Metrics.PagesProcessed.Inc()
	p.Metrics.PageDuration.Observe(duration.Seconds())
	p.Metrics.EntriesSegmented.Add(float64(entries))
	p.Metrics.RecordsEmitted.Add(float64(records))
	if dropped := entries - records; dropped > 0 {
		p.Metrics.EntriesDropped.Add(float64(dropped))
	}
}

// RecordPageSkipped records a page excluded before extraction.
func (p *Provider) RecordPageSkipped(ctx context.Context, reason string) {
	p.Metrics.PagesSkipped.WithLabelValues(reason).Inc()
}

// RecordJudgements records extracted judgement counts for one record.
func (p *Provider) RecordJudgements(ctx context.Context, taadil, jarh, unclassified int) {
	p.Metrics.JudgementsTotal.WithLabelValues(CategoryTaadil).Add(float64(taadil))
	p.Metrics.JudgementsTotal.WithLabelValues(CategoryJarh).Add(float64(jarh))
	p.Metrics.JudgementsTotal.WithLabelValues(CategoryUnclassified).Add(float64(unclassified))
}

// RecordRelations records extracted relation counts for one record.
func (p *Provider) RecordRelations(ctx context.Context, teachers, students int) {
	p.Metrics.RelationsTotal.WithLabelValues(RelationTeacher).Add(float64(teachers))
	p.Metrics.RelationsTotal.WithLabelValues(RelationStudent).Add(float64(students))
}
