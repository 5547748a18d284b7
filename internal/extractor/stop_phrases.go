// internal/extractor/stop_phrases.go
package extractor

// defaultStopPhrases are boundary markers for name extraction, in match
// priority order. A biography places the name between the ordinal marker
// and the first biographical predicate; these phrases approximate "first
// verb or descriptive clause" without parsing. A trailing space means the
// phrase only counts when followed by more text (e.g. the narration
// particle "نا" must stand alone, not begin a longer word).
//
// The set covers narration verbs (روى عن "narrated from", سمعت "I heard",
// حدث "reported", قال "said"), naming formulas (اسمه/اسمها "his/her name
// is"), companionship formulas (من اصحاب, له صحبة), and demonym/residency
// terms that open descriptive clauses.
var defaultStopPhrases = []string{
	"روت عن",
	"روى عن",
	"يروى عن",
	"حدث",
	"قال",
	"سمعت",
	"نا ",
	"اسمها ",
	"اسمه ",
	"من اصحاب",
	"له صحبة",
	"مدينى",
	"بكري",
	"خزاعية",
	"انصارية",
	"امرأة",
}

// DefaultStopPhrases returns a copy of the built-in stop-set.
func DefaultStopPhrases() []string {
	out := make([]string, len(defaultStopPhrases))
	copy(out, defaultStopPhrases)
	return out
}
