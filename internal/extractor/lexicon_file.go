package extractor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maktabah/rijal/internal/domain"
)

// LexiconFile is the on-disk shape of a replaceable term inventory. Any
// section left empty keeps its built-in default, so a file can override
// just one lexicon or just the stop-set.
type LexiconFile struct {
	Taadil      []domain.LexiconEntry `yaml:"taadil"`
	Jarh        []domain.LexiconEntry `yaml:"jarh"`
	StopPhrases []string              `yaml:"stop_phrases"`
}

// LoadLexiconFile reads a YAML lexicon file.
func LoadLexiconFile(path string) (*LexiconFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}

	var lf LexiconFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse lexicon file %s: %w", path, err)
	}

	for _, e := range append(append([]domain.LexiconEntry{}, lf.Taadil...), lf.Jarh...) {
		if e.Term == "" {
			return nil, fmt.Errorf("lexicon file %s: entry with empty term", path)
		}
		if e.Label == "" {
			return nil, fmt.Errorf("lexicon file %s: term %q has no label", path, e.Term)
		}
	}
	return &lf, nil
}

// Apply merges the file's sections into an extractor config.
func (lf *LexiconFile) Apply(cfg *Config) {
	if len(lf.Taadil) > 0 {
		cfg.TaadilTerms = lf.Taadil
	}
	if len(lf.Jarh) > 0 {
		cfg.JarhTerms = lf.Jarh
	}
	if len(lf.StopPhrases) > 0 {
		cfg.StopPhrases = lf.StopPhrases
	}
}
