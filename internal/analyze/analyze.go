// Package analyze turns fetched competitor pages into structured records
// that the benchmark aggregator consumes. It measures word counts, keyword
// density, heading optimization, co-occurring vocabulary, and named entity
// usage from raw HTML.
package analyze

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/marisa/content-optimizer/internal/fetch"
	"github.com/marisa/content-optimizer/internal/types"
)

// BuildCompetitorRecord analyzes a competitor page for a target keyword.
// The HTML is cleaned of navigation and boilerplate before measurement so
// metrics reflect the article body, not the site chrome.
func BuildCompetitorRecord(html, pageURL, keyword string) (*types.CompetitorRecord, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, &Error{URL: pageURL, Message: "keyword is required"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "failed to parse HTML", Cause: err}
	}

	text, err := fetch.ExtractMainText(html, fetch.ArticleSelectors())
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "failed to extract text", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &Error{URL: pageURL, Message: "page has no extractable content"}
	}

	wordCount := CountWords(text)

	record := &types.CompetitorRecord{
		URL:                   pageURL,
		WordCount:             wordCount,
		KeywordDensity:        KeywordDensity(text, keyword),
		OptimizedHeadingCount: countOptimizedHeadings(doc, keyword),
		Content:               text,
	}

	for _, term := range extractLSIKeywords(text, keyword) {
		record.LSIKeywords = append(record.LSIKeywords, types.LSIKeyword{
			Keyword:   term.keyword,
			Frequency: term.frequency,
			Density:   round3(float64(term.frequency) / float64(wordCount) * 100),
		})
	}

	for _, entity := range extractEntities(text) {
		record.Entities = append(record.Entities, types.Entity{
			Text:      entity.text,
			Type:      entity.kind,
			Frequency: entity.frequency,
		})
	}

	return record, nil
}

// countOptimizedHeadings counts h1 through h3 headings whose text contains
// the target keyword.
func countOptimizedHeadings(doc *goquery.Document, keyword string) int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	count := 0
	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(strings.ToLower(s.Text()), keyword) {
			count++
		}
	})
	return count
}
