package textscore

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// lexiconScorer is the default TextScorer: a scored word lexicon for
// sentiment and POS-tag chunking for noun phrases.
type lexiconScorer struct {
	lex *lexicon
}

// How far a negator or intensifier reaches forward, in tokens.
const (
	negatorWindow     = 3
	intensifierWindow = 2
)

// Sentiment averages the polarity and subjectivity of lexicon hits over the
// word tokens of text. Negators flip and dampen the next hit; intensifiers
// scale it. Text with no lexicon hits scores (0, 0).
func (s *lexiconScorer) Sentiment(text string) (float64, float64, error) {
	if s.lex == nil || len(s.lex.words) == 0 {
		return 0, 0, fmt.Errorf("sentiment lexicon not loaded")
	}

	var polSum, subSum float64
	matched := 0

	negateTTL := 0
	boost := 1.0
	boostTTL := 0

	for _, tok := range splitWords(text) {
		w := strings.ToLower(tok)

		if _, ok := s.lex.negators[w]; ok {
			negateTTL = negatorWindow
			continue
		}
		if m, ok := s.lex.intensifiers[w]; ok {
			boost = m
			boostTTL = intensifierWindow
			continue
		}

		entry, ok := s.lex.words[w]
		if !ok {
			if negateTTL > 0 {
				negateTTL--
			}
			if boostTTL > 0 {
				boostTTL--
				if boostTTL == 0 {
					boost = 1.0
				}
			}
			continue
		}

		pol := entry.Polarity
		sub := entry.Subjectivity
		if boostTTL > 0 {
			pol *= boost
			sub *= boost
		}
		if negateTTL > 0 {
			pol *= -0.5
		}
		polSum += clamp(pol, -1, 1)
		subSum += clamp(sub, 0, 1)
		matched++

		negateTTL = 0
		boostTTL = 0
		boost = 1.0
	}

	if matched == 0 {
		return 0, 0, nil
	}
	return polSum / float64(matched), subSum / float64(matched), nil
}

// nounTags and modifierTags drive the phrase chunker.
var nounTags = map[string]bool{
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

var modifierTags = map[string]bool{
	"JJ": true, "JJR": true, "JJS": true,
}

// NounPhrases extracts lowercase noun phrases by chunking adjective/noun
// runs over POS tags. Single-word chunks are kept only for proper nouns, so
// plain prose like "the cat sat" yields nothing and callers fall back to
// frequency-based keywords.
func (s *lexiconScorer) NounPhrases(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("pos tagging: %w", err)
	}

	var phrases []string
	var chunk []prose.Token

	flush := func() {
		defer func() { chunk = nil }()
		if len(chunk) == 0 {
			return
		}
		hasNoun := false
		proper := true
		for _, t := range chunk {
			if nounTags[t.Tag] {
				hasNoun = true
			}
			if t.Tag != "NNP" && t.Tag != "NNPS" {
				proper = false
			}
		}
		if !hasNoun {
			return
		}
		if len(chunk) == 1 && !proper {
			return
		}
		parts := make([]string, len(chunk))
		for i, t := range chunk {
			parts[i] = strings.ToLower(t.Text)
		}
		phrases = append(phrases, strings.Join(parts, " "))
	}

	for _, tok := range doc.Tokens() {
		if nounTags[tok.Tag] || modifierTags[tok.Tag] {
			chunk = append(chunk, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases, nil
}

// warmTagger forces the POS model to load so that a broken installation is
// caught at startup instead of on the first request.
func warmTagger() error {
	_, err := prose.NewDocument("Warming up the tagger.", prose.WithSegmentation(false))
	if err != nil {
		return fmt.Errorf("warm pos tagger: %w", err)
	}
	return nil
}
