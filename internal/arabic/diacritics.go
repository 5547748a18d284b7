package arabic

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFC returns s in Unicode normalization form C. Digitized pages mix
// precomposed and decomposed forms of the same letters; composing them
// keeps lexicon containment checks byte-comparable.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// StripDiacritics removes combining marks (tashkeel) from s and recomposes
// the remainder. The corpus is already diacritic-stripped; this handles the
// stray harakat some scans retain. Off by default in the pipeline since it
// rewrites the stored text, not only the matching view.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
