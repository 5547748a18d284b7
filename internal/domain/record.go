package domain

import "fmt"

// Judgement is one scholarly evaluation found in a biography entry.
// Statement is the canonical English label of the matched lexicon term and
// is empty for unclassified phrases. EvaluatedBy is empty when the
// judgement was found standalone rather than inside an attributed quote.
type Judgement struct {
	Statement   string `json:"statement,omitempty"`
	ExactText   string `json:"exact_text"`
	EvaluatedBy string `json:"evaluated_by,omitempty"`
}

// Source identifies where in the printed work a record was found.
type Source struct {
	Volume int `json:"volume"`
	Page   int `json:"page"`
}

// NarratorRecord is the unit of output: one narrator biography with its
// evaluations and transmission relations. Records are built once, emitted,
// and never mutated. Field order here is the serialization order.
type NarratorRecord struct {
	NarratorID   string      `json:"narrator_id"`
	FullName     string      `json:"full_name"`
	Taadil       []Judgement `json:"taadil"`
	Jarh         []Judgement `json:"jarh"`
	Unclassified []Judgement `json:"unclassified"`
	Teachers     []string    `json:"teachers"`
	Students     []string    `json:"students"`
	Source       Source      `json:"source"`
}

// FormatNarratorID renders a sequence value as a zero-padded narrator
// identifier, e.g. 1 -> "N00001".
func FormatNarratorID(seq int) string {
	return fmt.Sprintf("N%05d", seq)
}
