// Package storage persists narrator records to external stores.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	es "github.com/elastic/go-elasticsearch/v8"
	"golang.org/x/time/rate"

	"github.com/maktabah/rijal/internal/domain"
	"github.com/maktabah/rijal/internal/elasticsearch/mappings"
)

const defaultBulkSize = 500

// Logger defines the logging interface for storage
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// ElasticsearchStorage indexes narrator records into a single index.
type ElasticsearchStorage struct {
	client   *es.Client
	index    string
	bulkSize int
	limiter  *rate.Limiter
	logger   Logger
}

// NewElasticsearchStorage creates a new Elasticsearch storage instance.
// requestsPerSecond throttles bulk requests; zero disables throttling.
func NewElasticsearchStorage(client *es.Client, index string, bulkSize, requestsPerSecond int, logger Logger) *ElasticsearchStorage {
	if bulkSize <= 0 {
		bulkSize = defaultBulkSize
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return &ElasticsearchStorage{
		client:   client,
		index:    index,
		bulkSize: bulkSize,
		limiter:  limiter,
		logger:   logger,
	}
}

// TestConnection verifies the cluster is reachable.
func (s *ElasticsearchStorage) TestConnection(ctx context.Context) error {
	res, err := s.client.Info(s.client.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch info error: %s", res.String())
	}
	return nil
}

// EnsureIndex creates the narrator records index if it does not exist.
func (s *ElasticsearchStorage) EnsureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists(
		[]string{s.index},
		s.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to check index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	mapping := mappings.NewNarratorRecordsMapping()
	if err := mapping.Validate(); err != nil {
		return fmt.Errorf("invalid index mapping: %w", err)
	}
	body, err := mapping.GetJSON()
	if err != nil {
		return err
	}

	createRes, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithContext(ctx),
		s.client.Indices.Create.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating index: %s", createRes.String())
	}

	s.logger.Info("created index", "index", s.index)
	return nil
}

// Store bulk-indexes records in chunks. Document ids are narrator ids, so
// re-running a corpus overwrites rather than duplicates.
func (s *ElasticsearchStorage) Store(ctx context.Context, records []domain.NarratorRecord) error {
	if len(records) == 0 {
		return nil
	}

	for start := 0; start < len(records); start += s.bulkSize {
		end := start + s.bulkSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.bulkIndex(ctx, records[start:end]); err != nil {
			return err
		}
	}

	s.logger.Info("indexed records",
		"index", s.index,
		"count", len(records),
	)
	return nil
}

func (s *ElasticsearchStorage) bulkIndex(ctx context.Context, records []domain.NarratorRecord) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var buf bytes.Buffer
	for i := range records {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": s.index,
				"_id":    records[i].NarratorID,
			},
		}
		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := json.NewEncoder(&buf).Encode(records[i]); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("bulk request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk indexing error: %s", res.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResp); err != nil {
		return fmt.Errorf("error decoding bulk response: %w", err)
	}
	if bulkResp.Errors {
		return fmt.Errorf("bulk indexing reported item errors")
	}
	return nil
}
