package analyze

import (
	"math"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z'-]*`)

// CountWords counts the words in plain text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// KeywordDensity returns the percentage of words in text that are occurrences
// of the keyword phrase, rounded to three decimal places. A multi-word keyword
// counts each full phrase occurrence once.
func KeywordDensity(text, keyword string) float64 {
	totalWords := CountWords(text)
	if totalWords == 0 {
		return 0
	}
	occurrences := countPhrase(text, keyword)
	return round3(float64(occurrences) / float64(totalWords) * 100)
}

// countPhrase counts case-insensitive occurrences of a phrase on word
// boundaries.
func countPhrase(text, phrase string) int {
	phrase = strings.TrimSpace(strings.ToLower(phrase))
	if phrase == "" {
		return 0
	}

	phraseWords := strings.Fields(phrase)
	textWords := tokenize(text)

	count := 0
	for i := 0; i+len(phraseWords) <= len(textWords); i++ {
		match := true
		for j, pw := range phraseWords {
			if textWords[i+j] != pw {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

// tokenize lowercases text and splits it into alphabetic word tokens.
func tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// round3 rounds to three decimal places. Density values are stored with this
// precision everywhere so that re-deriving targets from benchmarks is
// idempotent.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
