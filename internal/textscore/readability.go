package textscore

import (
	"strings"
	"unicode/utf8"
)

// Default for degenerate input (too short, no sentences, no words) and for
// degraded calls.
var defaultReadability = Readability{
	Score:             60.0,
	ReadingLevel:      "standard",
	AvgSentenceLength: 20.0,
}

// Readability computes a Flesch reading-ease score clamped to [0,100].
// Degenerate text yields the fixed default rather than an error.
func (a *Analyzer) Readability(text string) (Readability, bool) {
	if !a.ready() {
		a.fallback("readability")
		return defaultReadability, true
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < 10 {
		return defaultReadability, false
	}
	sentenceList := splitSentences(text)
	if len(sentenceList) == 0 {
		return defaultReadability, false
	}
	wordList := strings.Fields(text)
	if len(wordList) == 0 {
		return defaultReadability, false
	}

	syllables := 0
	for _, w := range wordList {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(wordList)) / float64(len(sentenceList))
	syllablesPerWord := float64(syllables) / float64(len(wordList))

	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	score = clamp(score, 0, 100)

	level := "advanced"
	if score > 80 {
		level = "easy"
	} else if score > 60 {
		level = "standard"
	}

	return Readability{
		Score:             round1(score),
		ReadingLevel:      level,
		AvgSentenceLength: round1(wordsPerSentence),
	}, false
}
