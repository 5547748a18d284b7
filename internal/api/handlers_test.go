package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maktabah/rijal/internal/domain"
	"github.com/maktabah/rijal/internal/extractor"
)

// mockLogger implements Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ex := extractor.New(extractor.Config{}, &mockLogger{})
	handler := NewHandler(ex, 2, nil, &mockLogger{})

	router := gin.New()
	SetupRoutes(router, handler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/ready"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestExtract(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/extract", ExtractRequest{
		Text:   "1 - زيد بن عمرو روى عن خالد، روى عنه سعيد. قال احمد بن حنبل: ثقة.",
		Volume: 2,
		Page:   14,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ExtractResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 1 || len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got total=%d len=%d", resp.Total, len(resp.Records))
	}

	record := resp.Records[0]
	if record.NarratorID != "N00001" {
		t.Errorf("expected N00001, got %s", record.NarratorID)
	}
	if record.FullName != "زيد بن عمرو" {
		t.Errorf("unexpected name %q", record.FullName)
	}
	if record.Source.Volume != 2 || record.Source.Page != 14 {
		t.Errorf("unexpected source %+v", record.Source)
	}
}

func TestExtractSequenceResetsPerRequest(t *testing.T) {
	router := newTestRouter(t)
	body := ExtractRequest{Text: "1 - احمد بن صالح روى عن مالك.", Volume: 2, Page: 1}

	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/v1/extract", body)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
		var resp ExtractResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(resp.Records) != 1 || resp.Records[0].NarratorID != "N00001" {
			t.Errorf("request %d: expected fresh sequence, got %+v", i, resp.Records)
		}
	}
}

func TestExtractBadRequest(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/extract", map[string]any{"vol": 2})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing text, got %d", w.Code)
	}
}

func TestExtractCorpus(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/extract/corpus", ExtractCorpusRequest{
		Pages: []domain.Page{
			{Text: "1 - احمد بن حنبل ثقة.", Volume: 1, Page: 3},
			{Text: "2 - زيد بن عمرو روى عن خالد.", Volume: 2, Page: 5},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ExtractCorpusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Stats == nil {
		t.Fatal("expected stats in response")
	}
	if resp.Stats.PagesSkipped != 1 {
		t.Errorf("expected 1 page skipped, got %d", resp.Stats.PagesSkipped)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.Records))
	}
	if resp.Records[0].FullName != "زيد بن عمرو" {
		t.Errorf("unexpected name %q", resp.Records[0].FullName)
	}
}

func TestExtractCorpusEmptyPages(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/extract/corpus", map[string]any{"pages": []any{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty pages, got %d", w.Code)
	}
}

func TestGetLexicons(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/lexicons", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp LexiconsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Taadil) == 0 || len(resp.Jarh) == 0 || len(resp.StopPhrases) == 0 {
		t.Errorf("expected populated lexicons, got taadil=%d jarh=%d stops=%d",
			len(resp.Taadil), len(resp.Jarh), len(resp.StopPhrases))
	}
	if resp.Taadil[0].Term != "ثقة ثقة" {
		t.Errorf("expected first taadil term to be the strongest grade, got %q", resp.Taadil[0].Term)
	}
}
