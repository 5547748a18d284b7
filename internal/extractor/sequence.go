package extractor

import "github.com/maktabah/rijal/internal/domain"

// Sequence hands out narrator identifiers in strictly increasing order.
// It is owned by whoever drives record emission; identifiers are assigned
// exactly once per emitted record and never reused within a run.
//
// Sequence is not safe for concurrent use. A parallel driver must serialize
// assignment so that identifier order still matches input order, since that
// ordering is an externally observable contract.
type Sequence struct {
	next int
}

// NewSequence returns a sequence whose first identifier uses start.
// Passing 1 yields "N00001" first.
func NewSequence(start int) *Sequence {
	if start < 1 {
		start = 1
	}
	return &Sequence{next: start}
}

// Next returns the next narrator identifier and advances the sequence.
func (s *Sequence) Next() string {
	id := domain.FormatNarratorID(s.next)
	s.next++
	return id
}

// Current returns the value the next call to Next will format.
func (s *Sequence) Current() int { return s.next }
