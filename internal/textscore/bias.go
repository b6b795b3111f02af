package textscore

import "strings"

func fallbackBias() Bias {
	return Bias{Level: "unknown", Score: 0.0, Factors: map[string]int{}}
}

// Bias counts indicator words per category over the lowercase
// whitespace-split text (exact matches only, so punctuation-attached words
// do not count) and adds a subjectivity contribution.
func (a *Analyzer) Bias(text string) (Bias, bool) {
	if !a.ready() {
		a.fallback("bias")
		return fallbackBias(), true
	}

	_, subjectivity, err := a.backend.Sentiment(text)
	if err != nil {
		a.fallback("bias")
		return fallbackBias(), true
	}

	tokens := strings.Fields(strings.ToLower(text))
	factors := make(map[string]int, len(a.bias))
	total := 0.0
	for category, set := range a.bias {
		count := 0
		for _, w := range tokens {
			if _, ok := set[w]; ok {
				count++
			}
		}
		factors[category] = count
		total += float64(count)
	}
	total += subjectivity * 5

	level := "low"
	if total > 10 {
		level = "high"
	} else if total > 5 {
		level = "medium"
	}

	return Bias{Level: level, Score: round1(total), Factors: factors}, false
}
