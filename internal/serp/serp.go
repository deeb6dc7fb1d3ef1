// Package serp discovers top-ranking competitor pages for a target keyword
// using Google Custom Search.
package serp

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/marisa/content-optimizer/internal/types"
)

// resultsPerPage is the maximum number of results a single Custom Search
// request can return.
const resultsPerPage = 10

// maxSearchPages bounds how many result pages to scan before giving up on
// finding enough usable competitors.
const maxSearchPages = 3

// Searcher finds ranking competitor URLs for a keyword.
type Searcher struct {
	svc *customsearch.Service
	cx  string
}

// NewSearcher creates a new Searcher instance.
func NewSearcher(ctx context.Context, apiKey string, cx string) (*Searcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &Searcher{
		svc: svc,
		cx:  cx,
	}, nil
}

// TopCompetitors returns the URLs of the top-ranking article pages for a
// keyword. It always returns exactly the benchmark sample size, keeping at
// most one result per domain and skipping social, video, and marketplace
// pages that do not compete on article content.
func (s *Searcher) TopCompetitors(ctx context.Context, keyword string) ([]string, error) {
	var urls []string
	seenDomains := make(map[string]bool)

	for page := 0; page < maxSearchPages && len(urls) < types.SampleSize; page++ {
		resp, err := s.svc.Cse.List().
			Context(ctx).
			Cx(s.cx).
			Q(keyword).
			Num(resultsPerPage).
			Start(int64(page*resultsPerPage + 1)).
			Do()
		if err != nil {
			return nil, fmt.Errorf("search failed for %q: %w", keyword, err)
		}
		if len(resp.Items) == 0 {
			break
		}

		for _, item := range resp.Items {
			if len(urls) >= types.SampleSize {
				break
			}
			urls = appendCompetitor(urls, seenDomains, item.Link)
		}
	}

	if len(urls) < types.SampleSize {
		return nil, fmt.Errorf("found only %d usable competitors for %q, need %d",
			len(urls), keyword, types.SampleSize)
	}

	return urls, nil
}

// appendCompetitor adds a URL to the competitor list if it is usable and its
// domain has not been seen yet.
func appendCompetitor(urls []string, seenDomains map[string]bool, link string) []string {
	if IsExcluded(link) {
		return urls
	}
	domain := extractDomain(link)
	if domain == "" || seenDomains[domain] {
		return urls
	}
	seenDomains[domain] = true
	return append(urls, link)
}
