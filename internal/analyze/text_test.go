package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t  "))
	assert.Equal(t, 4, CountWords("four words right here"))
}

func TestKeywordDensity_SingleWord(t *testing.T) {
	text := "Go is fast. Go is simple. Everyone writes Go now."
	// 3 occurrences in 10 words.
	assert.Equal(t, 30.0, KeywordDensity(text, "go"))
}

func TestKeywordDensity_Phrase(t *testing.T) {
	text := "running shoes are great running shoes"
	// 2 phrase occurrences in 6 words, rounded to 3 decimals.
	assert.Equal(t, 33.333, KeywordDensity(text, "running shoes"))
}

func TestKeywordDensity_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, KeywordDensity("", "keyword"))
	assert.Equal(t, 0.0, KeywordDensity("some text here", ""))
	assert.Equal(t, 0.0, KeywordDensity("some text here", "missing"))
}

func TestKeywordDensity_CaseInsensitive(t *testing.T) {
	assert.Equal(t, KeywordDensity("Running Shoes rock", "running shoes"),
		KeywordDensity("running shoes rock", "RUNNING SHOES"))
}

func TestCountPhrase_NoPartialWordMatches(t *testing.T) {
	// "run" must not match inside "running".
	assert.Equal(t, 0, countPhrase("running is fun", "run"))
	assert.Equal(t, 1, countPhrase("I run daily while running", "run"))
}

func TestMarkdownHeadingCount(t *testing.T) {
	content := "# Title\n\nSome prose.\n\n## Section\n\n### Detail\n\n#### Too deep\n"
	assert.Equal(t, 3, MarkdownHeadingCount(content))
}

func TestOptimizedMarkdownHeadingCount(t *testing.T) {
	content := "# Best Running Shoes\n\n## Why Running Shoes Matter\n\n## Pricing\n"
	assert.Equal(t, 2, OptimizedMarkdownHeadingCount(content, "running shoes"))
	assert.Equal(t, 0, OptimizedMarkdownHeadingCount("no headings at all", "running shoes"))
}
