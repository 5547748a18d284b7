package extractor

import (
	"regexp"
	"strings"

	"github.com/maktabah/rijal/internal/arabic"
)

// entryMarkerRe locates biography boundaries: an ordinal number, optional
// whitespace, and a hyphen (e.g. "12 - "). Digits must be normalized
// before matching, which SegmentEntries does itself.
var entryMarkerRe = regexp.MustCompile(`[0-9]+[ \t]*-[ \t]*`)

// SegmentEntries splits a page's text into one span per biography entry.
// Every marker position starts a new span and the marker is retained as
// part of its span, since name extraction consumes it. Text before the
// first marker is discarded, as are empty or whitespace-only spans.
func SegmentEntries(text string) []string {
	text = arabic.NormalizeDigits(text)

	bounds := entryMarkerRe.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return nil
	}

	entries := make([]string, 0, len(bounds))
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		span := strings.TrimSpace(text[b[0]:end])
		if span == "" {
			continue
		}
		entries = append(entries, span)
	}
	return entries
}
