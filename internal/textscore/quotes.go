package textscore

import "strings"

// Straight and curly double quotes; either curly variant marks a quote.
const quoteMarks = "\"“”"

// KeyQuotes returns up to maxQuotes trimmed sentences that contain a
// quotation mark. The marks themselves are kept.
func (a *Analyzer) KeyQuotes(text string, maxQuotes int) ([]string, bool) {
	if maxQuotes <= 0 {
		maxQuotes = DefaultMaxQuotes
	}
	if !a.ready() {
		a.fallback("key_quotes")
		return []string{}, true
	}

	quotes := []string{}
	for _, sentence := range splitSentences(text) {
		if len(quotes) >= maxQuotes {
			break
		}
		if strings.ContainsAny(sentence, quoteMarks) {
			quotes = append(quotes, strings.TrimSpace(sentence))
		}
	}
	return quotes, false
}
