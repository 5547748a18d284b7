// Package mappings defines typed Elasticsearch index mappings.
package mappings

import (
	"encoding/json"
	"fmt"
)

// Field defines the mapping for a single document field.
type Field struct {
	Type       string           `json:"type"`
	Analyzer   string           `json:"analyzer,omitempty"`
	Format     string           `json:"format,omitempty"`
	Index      *bool            `json:"index,omitempty"`
	Properties map[string]Field `json:"properties,omitempty"`
}

// BaseSettings defines index-level settings shared by all mappings.
type BaseSettings struct {
	NumberOfShards   int `json:"number_of_shards"`
	NumberOfReplicas int `json:"number_of_replicas"`
}

// DefaultSettings returns the standard single-shard settings.
func DefaultSettings() BaseSettings {
	return BaseSettings{
		NumberOfShards:   1,
		NumberOfReplicas: 1,
	}
}

// ToJSON serializes a mapping to a JSON string.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal mapping: %w", err)
	}
	return string(data), nil
}

// ValidateSettings checks index settings for obviously invalid values.
func ValidateSettings(s BaseSettings) error {
	if s.NumberOfShards < 1 {
		return fmt.Errorf("number_of_shards must be at least 1, got %d", s.NumberOfShards)
	}
	if s.NumberOfReplicas < 0 {
		return fmt.Errorf("number_of_replicas must not be negative, got %d", s.NumberOfReplicas)
	}
	return nil
}
