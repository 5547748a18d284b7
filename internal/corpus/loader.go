// Package corpus handles the external I/O surfaces of the miner: reading
// page collections from JSON and writing narrator records back out. The
// extraction core assumes well-formed in-memory input; this package is
// where malformed files become fatal errors.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/maktabah/rijal/internal/arabic"
	"github.com/maktabah/rijal/internal/domain"
)

// LoadOptions controls text normalization at load time.
type LoadOptions struct {
	// StripDiacritics removes combining marks from page text. Off by
	// default: it rewrites the text that ends up in emitted records.
	StripDiacritics bool
}

// LoadPages reads a corpus file and flattens it into page order.
func LoadPages(path string, opts LoadOptions) ([]domain.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	pages, err := ParsePages(data, opts)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return pages, nil
}

// ParsePages decodes a page collection. Two container shapes occur in the
// digitized sources: a flat list of page objects, and a list of
// per-volume page lists. Both flatten to the same sequence, preserving
// order. Page text is NFC-normalized so lexicon matching sees composed
// forms.
func ParsePages(data []byte, opts LoadOptions) ([]domain.Page, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("parse page collection: %w", err)
	}

	var pages []domain.Page
	for i, element := range elements {
		trimmed := bytes.TrimSpace(element)
		if len(trimmed) == 0 {
			continue
		}
		switch trimmed[0] {
		case '{':
			var p domain.Page
			if err := json.Unmarshal(trimmed, &p); err != nil {
				return nil, fmt.Errorf("page %d: %w", i, err)
			}
			pages = append(pages, normalizePage(p, opts))
		case '[':
			var volume []domain.Page
			if err := json.Unmarshal(trimmed, &volume); err != nil {
				return nil, fmt.Errorf("volume %d: %w", i, err)
			}
			for _, p := range volume {
				pages = append(pages, normalizePage(p, opts))
			}
		default:
			return nil, fmt.Errorf("element %d: expected page object or page list", i)
		}
	}
	return pages, nil
}

func normalizePage(p domain.Page, opts LoadOptions) domain.Page {
	p.Text = arabic.NFC(p.Text)
	if opts.StripDiacritics {
		p.Text = arabic.StripDiacritics(p.Text)
	}
	return p
}
