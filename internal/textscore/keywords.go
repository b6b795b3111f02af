package textscore

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// stopWords is the fixed English stop list used by the fallback keyword
// extractor.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
		"this", "but", "his", "by", "from", "they", "we", "say", "her",
		"she", "or", "an", "will", "my", "one", "all", "would", "there",
		"their", "what", "so", "up", "out", "if", "about", "who", "get",
		"which", "go", "me", "when", "make", "can", "like", "time", "no",
		"just", "him", "know", "take", "people", "into", "year", "your",
		"good", "some", "could", "them", "see", "other", "than", "then",
		"now", "look", "only", "come", "its", "over", "think", "also",
		"back", "after", "use", "two", "how", "our", "work", "first",
		"well", "way", "even", "new", "want", "because", "any", "these",
		"give", "day", "most", "us",
	} {
		stopWords[w] = struct{}{}
	}
}

// Keywords extracts up to n key phrases. The primary strategy is noun-phrase
// frequency; the word-frequency fallback fires only when the primary yields
// nothing (or the backend is unavailable), not on other degeneracies.
func (a *Analyzer) Keywords(text string, n int) ([]string, bool) {
	if n <= 0 {
		n = DefaultKeywords
	}

	degraded := true
	if a.ready() {
		phrases, err := a.backend.NounPhrases(text)
		if err != nil {
			a.fallback("keywords")
		} else {
			if len(phrases) > 0 {
				return topByFrequency(phrases, n), false
			}
			degraded = false
		}
	} else {
		a.fallback("keywords")
	}

	return fallbackKeywords(text, n), degraded
}

// fallbackKeywords ranks lowercase whitespace tokens by frequency after
// dropping stop words, tokens of three or fewer characters, and anything
// not purely alphanumeric.
func fallbackKeywords(text string, n int) []string {
	var kept []string
	for _, tok := range strings.Fields(text) {
		lower := strings.ToLower(tok)
		if _, stop := stopWords[lower]; stop {
			continue
		}
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		if !isAlnum(tok) {
			continue
		}
		kept = append(kept, lower)
	}
	return topByFrequency(kept, n)
}

// topByFrequency returns the n most frequent items, ties broken by first
// appearance (stable sort over extraction order).
func topByFrequency(items []string, n int) []string {
	counts := make(map[string]int, len(items))
	var order []string
	for _, it := range items {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	if order == nil {
		order = []string{}
	}
	return order
}
