// Package processor drives extraction across a corpus of digitized pages.
// Pages are processed strictly in input order so narrator ids are
// deterministic for a given corpus.
package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/maktabah/rijal/internal/domain"
	"github.com/maktabah/rijal/internal/extractor"
	"github.com/maktabah/rijal/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RecordSink receives emitted narrator records. Implementations persist
// them to a database, search index, or file.
type RecordSink interface {
	Store(ctx context.Context, records []domain.NarratorRecord) error
}

// SkipReasonVolume labels pages excluded by the volume threshold.
const SkipReasonVolume = "volume_below_threshold"

// Stats summarizes one corpus run.
type Stats struct {
	PagesProcessed    int           `json:"pages_processed"`
	PagesSkipped      int           `json:"pages_skipped"`
	EntriesSegmented  int           `json:"entries_segmented"`
	RecordsEmitted    int           `json:"records_emitted"`
	TaadilCount       int           `json:"taadil_count"`
	JarhCount         int           `json:"jarh_count"`
	UnclassifiedCount int           `json:"unclassified_count"`
	TeacherCount      int           `json:"teacher_count"`
	StudentCount      int           `json:"student_count"`
	Duration          time.Duration `json:"duration_ns"`

	// Per-record presence counts, as reported in the run summary.
	RecordsWithTaadil   int `json:"records_with_taadil"`
	RecordsWithJarh     int `json:"records_with_jarh"`
	RecordsWithTeachers int `json:"records_with_teachers"`
	RecordsWithStudents int `json:"records_with_students"`
}

// Options configures a Processor.
type Options struct {
	// StartVolume excludes pages whose volume is below it. Zero means
	// no filtering.
	StartVolume int
	// Telemetry is optional; nil disables metrics and tracing.
	Telemetry *telemetry.Provider
	// Sinks receive all emitted records after extraction completes.
	Sinks []RecordSink
}

// Processor runs the extraction pipeline over pages sequentially.
type Processor struct {
	extractor   *extractor.Extractor
	startVolume int
	telemetry   *telemetry.Provider
	sinks       []RecordSink
	logger      Logger
}

// New creates a processor.
func New(ex *extractor.Extractor, opts Options, logger Logger) *Processor {
	return &Processor{
		extractor:   ex,
		startVolume: opts.StartVolume,
		telemetry:   opts.Telemetry,
		sinks:       opts.Sinks,
		logger:      logger,
	}
}

// Run extracts narrator records from pages in order. The narrator id
// sequence starts at 1 and advances only on emitted records, so the same
// corpus always yields the same ids.
func (p *Processor) Run(ctx context.Context, pages []domain.Page) ([]domain.NarratorRecord, *Stats, error) {
	if p.telemetry != nil {
		var span trace.Span
		ctx, span = p.telemetry.Tracer.Start(ctx, "corpus.run")
		defer span.End()
	}

	p.logger.Info("starting corpus run",
		"pages", len(pages),
		"start_volume", p.startVolume,
	)

	start := time.Now()
	seq := extractor.NewSequence(1)
	stats := &Stats{}
	records := make([]domain.NarratorRecord, 0, len(pages))

	for i := range pages {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		page := &pages[i]
		if p.startVolume > 0 && int(page.Volume) < p.startVolume {
			stats.PagesSkipped++
			if p.telemetry != nil {
				p.telemetry.RecordPageSkipped(ctx, SkipReasonVolume)
			}
			p.logger.Debug("page skipped",
				"volume", page.Volume,
				"page", page.Page,
				"reason", SkipReasonVolume,
			)
			continue
		}

		pageRecords := p.processPage(ctx, page, seq, stats)
		records = append(records, pageRecords...)
	}

	stats.Duration = time.Since(start)
	stats.RecordsEmitted = len(records)

	for _, sink := range p.sinks {
		if err := sink.Store(ctx, records); err != nil {
			return nil, nil, fmt.Errorf("storing records: %w", err)
		}
	}

	p.logger.Info("corpus run complete",
		"pages_processed", stats.PagesProcessed,
		"pages_skipped", stats.PagesSkipped,
		"entries", stats.EntriesSegmented,
		"records", stats.RecordsEmitted,
		"duration_ms", stats.Duration.Milliseconds(),
	)
	return records, stats, nil
}

func (p *Processor) processPage(ctx context.Context, page *domain.Page, seq *extractor.Sequence, stats *Stats) []domain.NarratorRecord {
	pageStart := time.Now()
	src := domain.Source{Volume: int(page.Volume), Page: int(page.Page)}

	entries := extractor.SegmentEntries(page.Text)
	pageRecords := make([]domain.NarratorRecord, 0, len(entries))
	for _, entry := range entries {
		record, ok := p.extractor.ProcessEntry(entry, src, seq)
		if !ok {
			continue
		}
		pageRecords = append(pageRecords, *record)

		stats.TaadilCount += len(record.Taadil)
		stats.JarhCount += len(record.Jarh)
		stats.UnclassifiedCount += len(record.Unclassified)
		stats.TeacherCount += len(record.Teachers)
		stats.StudentCount += len(record.Students)
		if len(record.Taadil) > 0 {
			stats.RecordsWithTaadil++
		}
		if len(record.Jarh) > 0 {
			stats.RecordsWithJarh++
		}
		if len(record.Teachers) > 0 {
			stats.RecordsWithTeachers++
		}
		if len(record.Students) > 0 {
			stats.RecordsWithStudents++
		}
		if p.telemetry != nil {
			p.telemetry.RecordJudgements(ctx, len(record.Taadil), len(record.Jarh), len(record.Unclassified))
			p.telemetry.RecordRelations(ctx, len(record.Teachers), len(record.Students))
		}
	}

	stats.PagesProcessed++
	stats.EntriesSegmented += len(entries)
	if p.telemetry != nil {
		p.telemetry.RecordPage(ctx, time.Since(pageStart), len(entries), len(pageRecords))
	}
	return pageRecords
}
