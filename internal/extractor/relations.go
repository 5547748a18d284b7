package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/maktabah/rijal/internal/arabic"
)

// Relation verb families. Teachers are introduced by "narrated from" /
// "heard from" constructions; students by "narrated from him" / "reported
// from him". The trailing \s+ after عن distinguishes "روى عن فلان"
// (teacher) from "روى عنه فلان" (student). Captures run to the next
// clause boundary: comma in either script, period, or newline.
var (
	teacherVerbRes = []*regexp.Regexp{
		regexp.MustCompile(`روى\s+عن\s+([^،,.\n]+)`),
		regexp.MustCompile(`روت\s+عن\s+([^،,.\n]+)`),
		regexp.MustCompile(`سمع\s+من\s+([^،,.\n]+)`),
		regexp.MustCompile(`سمعت\s+من\s+([^،,.\n]+)`),
	}
	studentVerbRes = []*regexp.Regexp{
		regexp.MustCompile(`روى\s+عنه[اء]?\s+([^،,.\n]+)`),
		regexp.MustCompile(`روت\s+عنه[اء]?\s+([^،,.\n]+)`),
		regexp.MustCompile(`حدث\s+عنه[اء]?\s+([^،,.\n]+)`),
	}
)

// clauseMarkers end a captured name list when another recognized verb
// phrase begins before the clause boundary.
var clauseMarkers = []string{
	"روى عن",
	"روت عن",
	"سمع من",
	"سمعت",
	"حدث عنه",
	"قال",
	"نا ",
}

// conjunctionRe splits a name list on the standalone conjunction و.
var conjunctionRe = regexp.MustCompile(`\s+و\s+`)

// candidate rejection thresholds.
const minNameRunes = 3

// metadataTokens are non-name tokens that appear inside narration clauses:
// بياض marks a blank space in the manuscript, حديث/احاديث introduce hadith
// counts rather than names.
var metadataTokens = []string{"بياض", "احاديث", "حديث"}

// RelationExtractor extracts teacher and student name sets from fixed
// verb-phrase constructions. It works on the entry's source text;
// footnotes and brackets are stripped per captured candidate, not
// globally first.
type RelationExtractor struct{}

// NewRelationExtractor returns a relation extractor.
func NewRelationExtractor() *RelationExtractor {
	return &RelationExtractor{}
}

// Extract returns the teacher and student name lists for one entry. Both
// lists are deduplicated by exact string while preserving first-seen
// order; either may be empty.
func (r *RelationExtractor) Extract(entry string) (teachers, students []string) {
	teachers = collectRelationNames(entry, teacherVerbRes)
	students = collectRelationNames(entry, studentVerbRes)
	return teachers, students
}

func collectRelationNames(entry string, verbs []*regexp.Regexp) []string {
	var names []string
	seen := make(map[string]struct{})

	for _, verb := range verbs {
		for _, m := range verb.FindAllStringSubmatch(entry, -1) {
			list := truncateAtClauseMarker(m[1])
			for _, raw := range conjunctionRe.Split(list, -1) {
				name, ok := cleanCandidate(raw)
				if !ok {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names
}

// truncateAtClauseMarker cuts a captured list at the earliest occurrence
// of another recognized verb phrase.
func truncateAtClauseMarker(list string) string {
	cut := len(list)
	for _, marker := range clauseMarkers {
		if i := strings.Index(list, marker); i >= 0 && i < cut {
			cut = i
		}
	}
	return list[:cut]
}

func cleanCandidate(raw string) (string, bool) {
	name := strings.TrimSpace(arabic.StripNoise(raw))

	// A candidate may still open with the narration preposition.
	for _, prefix := range []string{"عنها ", "عنه ", "عن "} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimSpace(strings.TrimPrefix(name, prefix))
			break
		}
	}

	if utf8.RuneCountInString(name) < minNameRunes {
		return "", false
	}
	for _, token := range metadataTokens {
		if strings.Contains(name, token) {
			return "", false
		}
	}
	return name, true
}
