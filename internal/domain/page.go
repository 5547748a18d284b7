// Package domain defines the core types of the narrator-record miner:
// source pages, judgements, narrator records, and term lexicons.
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/maktabah/rijal/internal/arabic"
)

// Page is one digitized book page as it arrives from the corpus file.
type Page struct {
	Text   string     `json:"text"`
	Volume PageNumber `json:"vol"`
	Page   PageNumber `json:"page"`
}

// PageNumber is a volume or page identifier that may arrive as a JSON
// number, an ASCII-digit string, or a native Arabic-Indic digit string
// (e.g. "٢"). It normalizes to an integer on decode.
type PageNumber int

// Int returns the normalized value.
func (n PageNumber) Int() int { return int(n) }

// UnmarshalJSON accepts numbers and digit strings in either numeral system.
func (n *PageNumber) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*n = PageNumber(int(v))
		return nil
	case string:
		parsed, err := ParsePageNumber(v)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	case nil:
		*n = 0
		return nil
	default:
		return fmt.Errorf("page number: unsupported JSON type %T", raw)
	}
}

// ParsePageNumber parses a digit string in either numeral system.
func ParsePageNumber(s string) (PageNumber, error) {
	normalized := strings.TrimSpace(arabic.NormalizeDigits(s))
	if normalized == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, fmt.Errorf("page number %q: %w", s, err)
	}
	return PageNumber(v), nil
}
