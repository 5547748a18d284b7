package processor

import (
	"context"
	"testing"

	"github.com/maktabah/rijal/internal/domain"
	"github.com/maktabah/rijal/internal/extractor"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

type captureSink struct {
	stored []domain.NarratorRecord
	calls  int
}

func (c *captureSink) Store(ctx context.Context, records []domain.NarratorRecord) error {
	c.calls++
	c.stored = append(c.stored, records...)
	return nil
}

func newTestProcessor(opts Options) *Processor {
	ex := extractor.New(extractor.Config{}, &mockLogger{})
	return New(ex, opts, &mockLogger{})
}

func TestRunVolumeFilter(t *testing.T) {
	p := newTestProcessor(Options{StartVolume: 2})
	pages := []domain.Page{
		{Text: "1 - احمد بن حنبل ثقة.", Volume: 1, Page: 10},
		{Text: "2 - زيد بن عمرو روى عن خالد.", Volume: 2, Page: 5},
	}

	records, stats, err := p.Run(context.Background(), pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PagesSkipped != 1 {
		t.Errorf("expected 1 page skipped, got %d", stats.PagesSkipped)
	}
	if stats.PagesProcessed != 1 {
		t.Errorf("expected 1 page processed, got %d", stats.PagesProcessed)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].FullName != "زيد بن عمرو" {
		t.Errorf("unexpected name %q", records[0].FullName)
	}
	if records[0].Source.Volume != 2 || records[0].Source.Page != 5 {
		t.Errorf("unexpected source %+v", records[0].Source)
	}
}

func TestRunSequentialIDs(t *testing.T) {
	p := newTestProcessor(Options{})
	pages := []domain.Page{
		{Text: "1 - احمد بن صالح ثقة. 2 - بكر بن سهل ضعيف.", Volume: 2, Page: 1},
		{Text: "3 - خالد بن يزيد صدوق.", Volume: 2, Page: 2},
	}

	records, _, err := p.Run(context.Background(), pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := []string{"N00001", "N00002", "N00003"}
	for i, id := range want {
		if records[i].NarratorID != id {
			t.Errorf("record %d: expected id %s, got %s", i, id, records[i].NarratorID)
		}
	}
}

func TestRunStats(t *testing.T) {
	p := newTestProcessor(Options{})
	pages := []domain.Page{
		{Text: "1 - زيد بن عمرو روى عن خالد، روى عنه سعيد. قال احمد بن حنبل: ثقة.", Volume: 3, Page: 7},
	}

	_, stats, err := p.Run(context.Background(), pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.EntriesSegmented != 1 {
		t.Errorf("expected 1 entry, got %d", stats.EntriesSegmented)
	}
	if stats.RecordsEmitted != 1 {
		t.Errorf("expected 1 record, got %d", stats.RecordsEmitted)
	}
	if stats.TaadilCount == 0 {
		t.Error("expected taadil judgements to be counted")
	}
	if stats.TeacherCount != 1 || stats.StudentCount != 1 {
		t.Errorf("expected 1 teacher and 1 student, got %d and %d", stats.TeacherCount, stats.StudentCount)
	}
}

func TestRunRecordPresenceCounts(t *testing.T) {
	p := newTestProcessor(Options{})
	pages := []domain.Page{
		// First entry carries ta'dil and both relations; second carries
		// nothing classifiable.
		{Text: "1 - زيد بن عمرو روى عن خالد، روى عنه سعيد. قال احمد بن حنبل: ثقة. 2 - بكر بن سهل روى عن مالك.", Volume: 2, Page: 1},
	}

	_, stats, err := p.Run(context.Background(), pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.RecordsEmitted != 2 {
		t.Fatalf("expected 2 records, got %d", stats.RecordsEmitted)
	}
	if stats.RecordsWithTaadil != 1 {
		t.Errorf("expected 1 record with ta'dil, got %d", stats.RecordsWithTaadil)
	}
	if stats.RecordsWithJarh != 0 {
		t.Errorf("expected 0 records with jarh, got %d", stats.RecordsWithJarh)
	}
	if stats.RecordsWithTeachers != 2 {
		t.Errorf("expected 2 records with teachers, got %d", stats.RecordsWithTeachers)
	}
	if stats.RecordsWithStudents != 1 {
		t.Errorf("expected 1 record with students, got %d", stats.RecordsWithStudents)
	}
	// Element totals stay distinct from presence counts.
	if stats.TaadilCount < stats.RecordsWithTaadil {
		t.Errorf("element count %d below presence count %d", stats.TaadilCount, stats.RecordsWithTaadil)
	}
}

func TestRunSink(t *testing.T) {
	sink := &captureSink{}
	p := newTestProcessor(Options{Sinks: []RecordSink{sink}})
	pages := []domain.Page{
		{Text: "1 - احمد بن صالح ثقة.", Volume: 2, Page: 1},
	}

	records, _, err := p.Run(context.Background(), pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.calls != 1 {
		t.Errorf("expected 1 sink call, got %d", sink.calls)
	}
	if len(sink.stored) != len(records) {
		t.Errorf("sink stored %d records, run returned %d", len(sink.stored), len(records))
	}
}

func TestRunDeterministic(t *testing.T) {
	pages := []domain.Page{
		{Text: "1 - احمد بن صالح ثقة. 2 - بكر بن سهل ضعيف.", Volume: 2, Page: 1},
	}

	first, _, err := newTestProcessor(Options{}).Run(context.Background(), pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := newTestProcessor(Options{}).Run(context.Background(), pages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].NarratorID != second[i].NarratorID || first[i].FullName != second[i].FullName {
			t.Errorf("record %d differs between runs", i)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	p := newTestProcessor(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := p.Run(ctx, []domain.Page{{Text: "1 - احمد ثقة.", Volume: 2, Page: 1}}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRunEmptyCorpus(t *testing.T) {
	p := newTestProcessor(Options{})
	records, stats, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 || stats.RecordsEmitted != 0 {
		t.Errorf("expected empty run, got %d records", len(records))
	}
}
