package arabic

import (
	"regexp"
	"strings"
)

// Footnote markers are parenthesized digit runs in either numeral system,
// e.g. (٣) or (12). Editorial insertions are any square-bracketed span.
var (
	footnoteRe  = regexp.MustCompile(`\(\s*[٠-٩0-9]+\s*\)`)
	bracketedRe = regexp.MustCompile(`\[[^\]]*\]`)
)

// StripNoise removes footnote markers and bracketed editorial insertions
// from a text span. The footnote pattern matches both native and ASCII
// digits, so the result is the same whether or not digits were normalized
// first. Idempotent: stripping already-stripped text is a no-op.
func StripNoise(s string) string {
	s = footnoteRe.ReplaceAllString(s, "")
	return bracketedRe.ReplaceAllString(s, "")
}

// TrimPunctuation removes surrounding whitespace and trailing sentence
// punctuation in both Arabic and ASCII forms.
func TrimPunctuation(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, ",،;؛:.")
}
