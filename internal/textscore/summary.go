package textscore

import (
	"sort"
	"strings"
)

// Sentence scoring for the extractive summary: earlier sentences score
// higher, medium-length sentences get a flat bonus.
const (
	summaryLengthBonus = 0.3
	summaryMinWords    = 10
	summaryMaxWords    = 25
)

// Summarize picks the top-scoring maxSentences sentences and re-joins them
// in original document order. Text at or under the limit is returned
// unchanged, as is any input the analyzer cannot process.
func (a *Analyzer) Summarize(text string, maxSentences int) (string, bool) {
	if maxSentences <= 0 {
		maxSentences = DefaultSummarySentences
	}
	if !a.ready() {
		a.fallback("summary")
		return text, true
	}

	sentenceList := splitSentences(text)
	if len(sentenceList) <= maxSentences {
		return text, false
	}

	type scored struct {
		index    int
		score    float64
		sentence string
	}

	ranked := make([]scored, len(sentenceList))
	for i, sentence := range sentenceList {
		score := 1.0 / float64(i+1)
		if n := len(strings.Fields(sentence)); n >= summaryMinWords && n <= summaryMaxWords {
			score += summaryLengthBonus
		}
		ranked[i] = scored{index: i, score: score, sentence: sentence}
	}

	// Stable sort keeps original relative order between equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	selected := ranked[:maxSentences]
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].index < selected[j].index
	})

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.sentence
	}
	return strings.Join(parts, " "), false
}
