package domain

// LexiconEntry maps a source-language evaluative phrase to its canonical
// English label.
type LexiconEntry struct {
	Term  string `json:"term"  yaml:"term"`
	Label string `json:"label" yaml:"label"`
}

// Lexicon is an ordered mapping from evaluative phrases to canonical
// labels. Insertion order is preserved; adding a term that already exists
// overwrites its label in place without moving it. Both properties matter:
// judgements are emitted in declaration order, and the curated term lists
// merge two historical variants that repeat some keys.
type Lexicon struct {
	entries []LexiconEntry
	index   map[string]int
}

// NewLexicon builds a lexicon from entries in order, applying the
// overwrite-in-place rule for duplicate terms.
func NewLexicon(entries ...LexiconEntry) *Lexicon {
	l := &Lexicon{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		l.Add(e.Term, e.Label)
	}
	return l
}

// Add inserts or updates a term.
func (l *Lexicon) Add(term, label string) {
	if term == "" {
		return
	}
	if i, ok := l.index[term]; ok {
		l.entries[i].Label = label
		return
	}
	l.index[term] = len(l.entries)
	l.entries = append(l.entries, LexiconEntry{Term: term, Label: label})
}

// Entries returns the entries in declaration order. The returned slice is
// shared; callers must not modify it.
func (l *Lexicon) Entries() []LexiconEntry {
	return l.entries
}

// Terms returns the terms in declaration order.
func (l *Lexicon) Terms() []string {
	terms := make([]string, len(l.entries))
	for i, e := range l.entries {
		terms[i] = e.Term
	}
	return terms
}

// Label returns the canonical label for term.
func (l *Lexicon) Label(term string) (string, bool) {
	i, ok := l.index[term]
	if !ok {
		return "", false
	}
	return l.entries[i].Label, true
}

// Len returns the number of distinct terms.
func (l *Lexicon) Len() int { return len(l.entries) }
