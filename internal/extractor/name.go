package extractor

import (
	"regexp"
	"strings"

	"github.com/maktabah/rijal/internal/arabic"
)

const (
	// fallbackNameWords is how many leading words stand in for the name
	// when no stop phrase occurs in the entry.
	fallbackNameWords = 5
	// maxNameWords caps every extracted name.
	maxNameWords = 6
)

// markerPrefixRe strips the leading "number - " ordinal marker.
var markerPrefixRe = regexp.MustCompile(`^[0-9]+\s*-\s*`)

// NameExtractor derives a narrator's display name from the head of a
// segmented entry using an ordered stop-set of boundary phrases.
type NameExtractor struct {
	phrases []string
	stops   []*regexp.Regexp
}

// NewNameExtractor compiles the given stop phrases. Each phrase matches
// after whitespace; internal spaces match any whitespace run, and a phrase
// written with a trailing space requires trailing whitespace in the text.
func NewNameExtractor(stopPhrases []string) *NameExtractor {
	phrases := make([]string, 0, len(stopPhrases))
	stops := make([]*regexp.Regexp, 0, len(stopPhrases))
	for _, phrase := range stopPhrases {
		if strings.TrimSpace(phrase) == "" {
			continue
		}
		phrases = append(phrases, phrase)
		stops = append(stops, compileStopPhrase(phrase))
	}
	return &NameExtractor{phrases: phrases, stops: stops}
}

// StopPhrases returns the active stop phrases in order.
func (n *NameExtractor) StopPhrases() []string {
	out := make([]string, len(n.phrases))
	copy(out, n.phrases)
	return out
}

// Extract returns the narrator name for one entry span, or ok=false when
// no usable name remains, which tells the caller to drop the entry.
func (n *NameExtractor) Extract(entry string) (string, bool) {
	text := markerPrefixRe.ReplaceAllString(entry, "")
	text = arabic.StripNoise(text)

	// Earliest-occurring stop phrase wins; several may appear in one entry.
	cut := len(text)
	for _, stop := range n.stops {
		if loc := stop.FindStringIndex(text); loc != nil && loc[0] < cut {
			cut = loc[0]
		}
	}

	var name string
	if cut < len(text) {
		name = text[:cut]
	} else {
		words := strings.Fields(text)
		if len(words) > fallbackNameWords {
			words = words[:fallbackNameWords]
		}
		name = strings.Join(words, " ")
	}

	name = arabic.TrimPunctuation(name)
	if words := strings.Fields(name); len(words) > maxNameWords {
		name = strings.Join(words[:maxNameWords], " ")
	} else {
		name = strings.Join(words, " ")
	}

	if name == "" {
		return "", false
	}
	return name, true
}

func compileStopPhrase(phrase string) *regexp.Regexp {
	trailing := strings.HasSuffix(phrase, " ")
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	pattern := `\s` + strings.Join(quoted, `\s+`)
	if trailing {
		pattern += `\s`
	}
	return regexp.MustCompile(pattern)
}
