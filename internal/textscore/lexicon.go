package textscore

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var embeddedLexicon []byte

// lexiconEntry is one scored word in the sentiment lexicon.
type lexiconEntry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// lexiconFile is the on-disk lexicon format.
type lexiconFile struct {
	Words        map[string]lexiconEntry `yaml:"words"`
	Negators     []string                `yaml:"negators"`
	Intensifiers map[string]float64      `yaml:"intensifiers"`
	Bias         map[string][]string     `yaml:"bias"`
}

// lexicon is the parsed, lookup-ready form.
type lexicon struct {
	words        map[string]lexiconEntry
	negators     map[string]struct{}
	intensifiers map[string]float64
}

// loadLexicon parses the embedded lexicon, or the file at path when given.
// Returns the sentiment lexicon and the bias keyword lists.
func loadLexicon(path string) (*lexicon, map[string][]string, error) {
	data := embeddedLexicon
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read lexicon: %w", err)
		}
		data = b
	}

	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(file.Words) == 0 {
		return nil, nil, fmt.Errorf("lexicon has no scored words")
	}

	lex := &lexicon{
		words:        make(map[string]lexiconEntry, len(file.Words)),
		negators:     make(map[string]struct{}, len(file.Negators)),
		intensifiers: make(map[string]float64, len(file.Intensifiers)),
	}
	for w, e := range file.Words {
		lex.words[strings.ToLower(w)] = lexiconEntry{
			Polarity:     clamp(e.Polarity, -1, 1),
			Subjectivity: clamp(e.Subjectivity, 0, 1),
		}
	}
	for _, n := range file.Negators {
		lex.negators[strings.ToLower(n)] = struct{}{}
	}
	for w, m := range file.Intensifiers {
		lex.intensifiers[strings.ToLower(w)] = m
	}

	biasKeywords := file.Bias
	if len(biasKeywords) == 0 {
		biasKeywords = defaultBiasKeywords()
	}
	return lex, biasKeywords, nil
}

// defaultBiasKeywords are the fixed indicator lists used when the lexicon
// file does not carry its own.
func defaultBiasKeywords() map[string][]string {
	return map[string][]string{
		"emotional":       {"must", "never", "always", "clearly", "obviously"},
		"loaded_words":    {"radical", "extremist", "fanatic", "fundamental"},
		"generalizations": {"all", "every", "none", "never", "always"},
	}
}

func buildBiasSets(keywords map[string][]string) map[string]map[string]struct{} {
	sets := make(map[string]map[string]struct{}, len(keywords))
	for category, list := range keywords {
		set := make(map[string]struct{}, len(list))
		for _, w := range list {
			set[strings.ToLower(w)] = struct{}{}
		}
		sets[category] = set
	}
	return sets
}
