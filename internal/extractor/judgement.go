// Package extractor implements the text-mining pipeline that turns raw
// biography pages into narrator records: entry segmentation, name
// extraction, judgement classification against curated lexicons, and
// teacher/student relation extraction.
//
// judgement.go uses Aho-Corasick automatons (one per lexicon) so a phrase
// is tested against every lexicon term in a single pass.
package extractor

import (
	"regexp"
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/maktabah/rijal/internal/domain"
)

// attributedRe captures the "so-and-so said: phrase" construction. The
// evaluator is introduced by قال or وقال and runs to an Arabic or
// fullwidth colon; the judgement phrase runs to sentence punctuation or a
// newline and is bounded at 200 runes to avoid runaway matches.
var attributedRe = regexp.MustCompile(`(?:قال|وقال)\s+([\p{Arabic}\s]+?)[:：]\s*([^.،\n]{2,200})`)

// JudgementClassifier scans entries for approval and criticism terms,
// optionally pairing a term with a preceding evaluator attribution.
type JudgementClassifier struct {
	taadil *lexiconMatcher
	jarh   *lexiconMatcher
}

// Judgements holds the classified output for one entry, each list in
// deterministic emission order.
type Judgements struct {
	Taadil       []domain.Judgement
	Jarh         []domain.Judgement
	Unclassified []domain.Judgement
}

// NewJudgementClassifier builds a classifier over the two lexicons.
func NewJudgementClassifier(taadil, jarh *domain.Lexicon) *JudgementClassifier {
	return &JudgementClassifier{
		taadil: newLexiconMatcher(taadil),
		jarh:   newLexiconMatcher(jarh),
	}
}

// Classify runs both extraction modes over an entry and concatenates the
// results.
//
// Attributed mode finds every "evaluator: phrase" construction and tests
// the phrase for containment of every term from both lexicons; every
// contained term yields one judgement carrying the evaluator, so a single
// phrase can contribute to both categories. A phrase matching nothing is
// surfaced as unclassified rather than discarded.
//
// Standalone mode independently tests the whole entry for containment of
// each term, yielding evaluator-less judgements, including for terms
// already captured inside an attributed quote. Consumers reduce the
// duplicate signal themselves.
func (c *JudgementClassifier) Classify(entry string) Judgements {
	var out Judgements

	for _, m := range attributedRe.FindAllStringSubmatch(entry, -1) {
		evaluator := strings.TrimSpace(m[1])
		phrase := strings.TrimSpace(m[2])
		classified := false

		for _, e := range c.taadil.containedEntries(phrase) {
			out.Taadil = append(out.Taadil, domain.Judgement{
				Statement:   e.Label,
				ExactText:   phrase,
				EvaluatedBy: evaluator,
			})
			classified = true
		}
		for _, e := range c.jarh.containedEntries(phrase) {
			out.Jarh = append(out.Jarh, domain.Judgement{
				Statement:   e.Label,
				ExactText:   phrase,
				EvaluatedBy: evaluator,
			})
			classified = true
		}

		if !classified {
			out.Unclassified = append(out.Unclassified, domain.Judgement{
				ExactText:   phrase,
				EvaluatedBy: evaluator,
			})
		}
	}

	for _, e := range c.taadil.containedEntries(entry) {
		out.Taadil = append(out.Taadil, domain.Judgement{Statement: e.Label, ExactText: e.Term})
	}
	for _, e := range c.jarh.containedEntries(entry) {
		out.Jarh = append(out.Jarh, domain.Judgement{Statement: e.Label, ExactText: e.Term})
	}

	return out
}

// lexiconMatcher pairs a lexicon with its Aho-Corasick automaton. Keeping
// one automaton per lexicon preserves terms that appear in both lexicons
// ("وسط"), which a combined automaton would collapse.
type lexiconMatcher struct {
	lex     *domain.Lexicon
	matcher *ahocorasick.Matcher
}

func newLexiconMatcher(lex *domain.Lexicon) *lexiconMatcher {
	m := &lexiconMatcher{lex: lex}
	if lex.Len() > 0 {
		m.matcher = ahocorasick.NewStringMatcher(lex.Terms())
	}
	return m
}

// containedEntries returns the lexicon entries whose term occurs in text,
// in lexicon declaration order. Each term is reported at most once no
// matter how often it occurs. Matcher.Match mutates automaton state, so
// the thread-safe variant is required: one classifier is shared across
// concurrent HTTP requests.
func (m *lexiconMatcher) containedEntries(text string) []domain.LexiconEntry {
	if m.matcher == nil || text == "" {
		return nil
	}
	hits := m.matcher.MatchThreadSafe([]byte(text))
	if len(hits) == 0 {
		return nil
	}
	sort.Ints(hits)

	entries := m.lex.Entries()
	out := make([]domain.LexiconEntry, 0, len(hits))
	for _, i := range hits {
		if i >= 0 && i < len(entries) {
			out = append(out, entries[i])
		}
	}
	return out
}
