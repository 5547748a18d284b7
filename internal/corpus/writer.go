package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/maktabah/rijal/internal/domain"
)

// WriteOptions controls output serialization.
type WriteOptions struct {
	// OmitUnclassified drops the unclassified field from every record,
	// for consumers whose schema predates it.
	OmitUnclassified bool
}

// WriteRecords serializes records to path as indented UTF-8 JSON with the
// native script preserved (no HTML escaping) and stable field order.
// The file is written whole; a failed run leaves no partial output.
func WriteRecords(path string, records []domain.NarratorRecord, opts WriteOptions) error {
	data, err := MarshalRecords(records, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// MarshalRecords renders records to JSON bytes.
func MarshalRecords(records []domain.NarratorRecord, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	var err error
	if opts.OmitUnclassified {
		err = enc.Encode(toCompat(records))
	} else {
		err = enc.Encode(records)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return buf.Bytes(), nil
}

// compatRecord is the prior consumer schema: identical to NarratorRecord
// minus the unclassified field.
type compatRecord struct {
	NarratorID string             `json:"narrator_id"`
	FullName   string             `json:"full_name"`
	Taadil     []domain.Judgement `json:"taadil"`
	Jarh       []domain.Judgement `json:"jarh"`
	Teachers   []string           `json:"teachers"`
	Students   []string           `json:"students"`
	Source     domain.Source      `json:"source"`
}

func toCompat(records []domain.NarratorRecord) []compatRecord {
	out := make([]compatRecord, len(records))
	for i, r := range records {
		out[i] = compatRecord{
			NarratorID: r.NarratorID,
			FullName:   r.FullName,
			Taadil:     r.Taadil,
			Jarh:       r.Jarh,
			Teachers:   r.Teachers,
			Students:   r.Students,
			Source:     r.Source,
		}
	}
	return out
}
