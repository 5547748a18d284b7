//nolint:testpackage // Testing internal storage requires same package access
package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/maktabah/rijal/internal/domain"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...any) {}
func (m *mockLogger) Info(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Error(msg string, keysAndValues ...any) {}

func testRecord(id, name string) domain.NarratorRecord {
	return domain.NarratorRecord{
		NarratorID:   id,
		FullName:     name,
		Taadil:       []domain.Judgement{},
		Jarh:         []domain.Judgement{},
		Unclassified: []domain.Judgement{},
		Teachers:     []string{},
		Students:     []string{},
		Source:       domain.Source{Volume: 2, Page: 1},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*es.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := es.NewClient(es.Config{Addresses: []string{srv.URL}})
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return client, srv
}

func TestStoreBulkChunks(t *testing.T) {
	var bulkCalls int
	var lines []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/_bulk") {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		bulkCalls++
		body, _ := io.ReadAll(r.Body)
		for _, line := range strings.Split(strings.TrimSpace(string(body)), "\n") {
			lines = append(lines, line)
		}
		_, _ = w.Write([]byte(`{"errors":false,"items":[]}`))
	})

	s := NewElasticsearchStorage(client, "narrator_records", 2, 0, &mockLogger{})
	records := []domain.NarratorRecord{
		testRecord("N00001", "احمد بن صالح"),
		testRecord("N00002", "بكر بن سهل"),
		testRecord("N00003", "خالد بن يزيد"),
	}

	if err := s.Store(context.Background(), records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bulkCalls != 2 {
		t.Errorf("expected 2 bulk requests for bulk size 2, got %d", bulkCalls)
	}
	// Two lines per record: action meta plus document.
	if len(lines) != 6 {
		t.Errorf("expected 6 bulk lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"_id":"N00001"`) {
		t.Errorf("expected first meta line to carry narrator id, got %s", lines[0])
	}
}

func TestStoreEmpty(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{}`))
	})

	s := NewElasticsearchStorage(client, "narrator_records", 0, 0, &mockLogger{})
	if err := s.Store(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no requests for empty batch, got %d", calls)
	}
}

func TestStoreBulkItemErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":true,"items":[]}`))
	})

	s := NewElasticsearchStorage(client, "narrator_records", 0, 0, &mockLogger{})
	if err := s.Store(context.Background(), []domain.NarratorRecord{testRecord("N00001", "احمد")}); err == nil {
		t.Fatal("expected error when bulk response reports item errors")
	}
}

func TestEnsureIndexExisting(t *testing.T) {
	var created bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		created = true
		_, _ = w.Write([]byte(`{}`))
	})

	s := NewElasticsearchStorage(client, "narrator_records", 0, 0, &mockLogger{})
	if err := s.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected no create call when index exists")
	}
}

func TestEnsureIndexCreates(t *testing.T) {
	var createBody string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			createBody = string(body)
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		default:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{}`))
		}
	})

	s := NewElasticsearchStorage(client, "narrator_records", 0, 0, &mockLogger{})
	if err := s.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(createBody, `"narrator_id"`) {
		t.Errorf("expected mapping body with narrator_id field, got %s", createBody)
	}
}
