package extractor

import (
	"github.com/maktabah/rijal/internal/domain"
)

// Extractor orchestrates the per-entry stages: name extraction, judgement
// classification, and relation extraction. It carries no mutable state;
// the narrator-id sequence is owned by the caller and threaded through.
type Extractor struct {
	names      *NameExtractor
	judgements *JudgementClassifier
	relations  *RelationExtractor
	logger     Logger
}

// Config holds the replaceable extraction inputs. Nil or empty fields fall
// back to the built-in defaults.
type Config struct {
	StopPhrases []string
	TaadilTerms []domain.LexiconEntry
	JarhTerms   []domain.LexiconEntry
}

// New creates an extractor.
func New(cfg Config, logger Logger) *Extractor {
	stops := cfg.StopPhrases
	if len(stops) == 0 {
		stops = DefaultStopPhrases()
	}

	taadil := DefaultTaadilLexicon()
	if len(cfg.TaadilTerms) > 0 {
		taadil = domain.NewLexicon(cfg.TaadilTerms...)
	}
	jarh := DefaultJarhLexicon()
	if len(cfg.JarhTerms) > 0 {
		jarh = domain.NewLexicon(cfg.JarhTerms...)
	}

	e := &Extractor{
		names:      NewNameExtractor(stops),
		judgements: NewJudgementClassifier(taadil, jarh),
		relations:  NewRelationExtractor(),
		logger:     logger,
	}

	logger.Info("extractor initialized",
		"stop_phrases", len(stops),
		"taadil_terms", taadil.Len(),
		"jarh_terms", jarh.Len(),
	)
	return e
}

// TaadilLexicon returns the active approval lexicon.
func (e *Extractor) TaadilLexicon() *domain.Lexicon { return e.judgements.taadil.lex }

// JarhLexicon returns the active criticism lexicon.
func (e *Extractor) JarhLexicon() *domain.Lexicon { return e.judgements.jarh.lex }

// StopPhrases returns the active name-boundary stop phrases in order.
func (e *Extractor) StopPhrases() []string { return e.names.StopPhrases() }

// ProcessEntry builds one narrator record from a segmented entry span.
// Entries without an extractable name are dropped: ok is false, no record
// exists, and the sequence is not advanced. Dropped entries never get
// placeholder names.
func (e *Extractor) ProcessEntry(entry string, src domain.Source, seq *Sequence) (*domain.NarratorRecord, bool) {
	name, ok := e.names.Extract(entry)
	if !ok {
		e.logger.Debug("entry dropped: no extractable name",
			"volume", src.Volume,
			"page", src.Page,
		)
		return nil, false
	}

	judgements := e.judgements.Classify(entry)
	teachers, students := e.relations.Extract(entry)

	record := &domain.NarratorRecord{
		NarratorID:   seq.Next(),
		FullName:     name,
		Taadil:       emptyIfNil(judgements.Taadil),
		Jarh:         emptyIfNil(judgements.Jarh),
		Unclassified: emptyIfNil(judgements.Unclassified),
		Teachers:     emptyIfNilStrings(teachers),
		Students:     emptyIfNilStrings(students),
		Source:       src,
	}
	return record, true
}

// ProcessPage segments a page's text and builds a record per named entry.
// Volume filtering happens upstream; by the time a page reaches here it is
// part of the intended corpus.
func (e *Extractor) ProcessPage(text string, src domain.Source, seq *Sequence) []domain.NarratorRecord {
	entries := SegmentEntries(text)
	records := make([]domain.NarratorRecord, 0, len(entries))
	for _, entry := range entries {
		record, ok := e.ProcessEntry(entry, src, seq)
		if !ok {
			continue
		}
		records = append(records, *record)
	}
	return records
}

// Emitted lists serialize as [] rather than null, matching the consumer
// schema.
func emptyIfNil(js []domain.Judgement) []domain.Judgement {
	if js == nil {
		return []domain.Judgement{}
	}
	return js
}

func emptyIfNilStrings(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
