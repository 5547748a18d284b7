package extractor

import (
	"reflect"
	"testing"

	"github.com/maktabah/rijal/internal/domain"
)

// mockLogger discards log output in tests.
type mockLogger struct{}

func (mockLogger) Debug(string, ...any) {}
func (mockLogger) Info(string, ...any)  {}
func (mockLogger) Warn(string, ...any)  {}
func (mockLogger) Error(string, ...any) {}

func TestSequence(t *testing.T) {
	seq := NewSequence(1)
	if got := seq.Next(); got != "N00001" {
		t.Errorf("first id = %q, want N00001", got)
	}
	if got := seq.Next(); got != "N00002" {
		t.Errorf("second id = %q, want N00002", got)
	}

	seq = NewSequence(0)
	if got := seq.Next(); got != "N00001" {
		t.Errorf("sequence must start at 1, got %q", got)
	}
}

func TestProcessEntryDropsNamelessWithoutAdvancing(t *testing.T) {
	e := New(Config{}, mockLogger{})
	seq := NewSequence(1)
	src := domain.Source{Volume: 2, Page: 10}

	if _, ok := e.ProcessEntry("1 - (١)", src, seq); ok {
		t.Fatal("nameless entry must be dropped")
	}
	if seq.Current() != 1 {
		t.Errorf("sequence advanced on dropped entry: %d", seq.Current())
	}

	record, ok := e.ProcessEntry("2 - مالك بن انس", src, seq)
	if !ok {
		t.Fatal("expected a record")
	}
	if record.NarratorID != "N00001" {
		t.Errorf("narrator_id = %q, want N00001 (drops must not consume ids)", record.NarratorID)
	}
}

func TestProcessPageEndToEnd(t *testing.T) {
	e := New(Config{}, mockLogger{})
	seq := NewSequence(1)
	src := domain.Source{Volume: 2, Page: 10}

	text := "1 - زيد بن عمرو روى عن خالد، روى عنه سعيد. قال احمد بن حنبل: ثقة."
	records := e.ProcessPage(text, src, seq)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]

	if rec.NarratorID != "N00001" {
		t.Errorf("narrator_id = %q", rec.NarratorID)
	}
	if rec.FullName != "زيد بن عمرو" {
		t.Errorf("full_name = %q", rec.FullName)
	}
	if rec.Source != src {
		t.Errorf("source = %+v", rec.Source)
	}
	if !reflect.DeepEqual(rec.Teachers, []string{"خالد"}) {
		t.Errorf("teachers = %q", rec.Teachers)
	}
	if !reflect.DeepEqual(rec.Students, []string{"سعيد"}) {
		t.Errorf("students = %q", rec.Students)
	}

	if len(rec.Taadil) == 0 {
		t.Fatal("expected approval judgements")
	}
	if rec.Taadil[0].EvaluatedBy != "احمد بن حنبل" {
		t.Errorf("evaluated_by = %q", rec.Taadil[0].EvaluatedBy)
	}
	if len(rec.Jarh) != 0 {
		t.Errorf("expected no criticism, got %+v", rec.Jarh)
	}
}

func TestProcessPageRecordsInEntryOrder(t *testing.T) {
	e := New(Config{}, mockLogger{})
	seq := NewSequence(1)
	src := domain.Source{Volume: 3, Page: 44}

	text := "1 - الاول بن فلان.\n2 - الثاني بن فلان.\n3 - الثالث بن فلان."
	records := e.ProcessPage(text, src, seq)

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, rec := range records {
		want := domain.FormatNarratorID(i + 1)
		if rec.NarratorID != want {
			t.Errorf("record %d id = %q, want %q", i, rec.NarratorID, want)
		}
	}
}

func TestProcessPageEmptyListsSerializeAsLists(t *testing.T) {
	e := New(Config{}, mockLogger{})
	records := e.ProcessPage("1 - رجل من الانصار", domain.Source{Volume: 2, Page: 1}, NewSequence(1))

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Taadil == nil || rec.Jarh == nil || rec.Teachers == nil || rec.Students == nil {
		t.Error("emitted lists must be non-nil so they serialize as []")
	}
}
