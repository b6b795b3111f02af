package textscore

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// splitSentences segments text into trimmed, non-empty sentences (UAX #29).
func splitSentences(text string) []string {
	var out []string
	seg := sentences.FromString(text)
	for seg.Next() {
		s := strings.TrimSpace(seg.Value())
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitWords segments text into word tokens (UAX #29), dropping whitespace
// and punctuation segments.
func splitWords(text string) []string {
	var out []string
	seg := words.FromString(text)
	for seg.Next() {
		w := seg.Value()
		if hasAlnum(w) {
			out = append(out, w)
		}
	}
	return out
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// countSyllables estimates syllables by counting vowel groups, with a
// silent-e adjustment. Words always count as at least one syllable.
func countSyllables(word string) int {
	w := strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range w {
		if !unicode.IsLetter(r) {
			prevVowel = false
			continue
		}
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
