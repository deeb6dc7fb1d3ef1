// Package fetch - cached.go provides in-memory TTL caching for fetched pages.
package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultPageCacheTTL is how long a fetched competitor page stays fresh.
// Competitor content changes slowly relative to how often the same keyword
// is re-analyzed.
const DefaultPageCacheTTL = 24 * time.Hour

// CachedFetcher wraps URL fetching with an in-memory TTL cache keyed by URL.
// It is safe for concurrent use.
type CachedFetcher struct {
	options   *Options
	cacheTTL  time.Duration
	skipCache bool

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultPageCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultPageCacheTTL
	}
	return &CachedFetcher{
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
		cache:     make(map[string]cacheEntry),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// Fetch retrieves a URL, returning the cached copy when it is still within
// the TTL, otherwise fetching fresh content and caching it.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		f.mu.RLock()
		entry, ok := f.cache[urlStr]
		f.mu.RUnlock()
		if ok && time.Since(entry.fetchedAt) < f.cacheTTL {
			return &CachedResult{Result: entry.result, FromCache: true}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	text, _ := ExtractMainText(result.HTML, ArticleSelectors())
	result.Text = text

	if !f.skipCache {
		f.mu.Lock()
		f.cache[urlStr] = cacheEntry{result: result, fetchedAt: time.Now()}
		f.mu.Unlock()
	}

	return &CachedResult{Result: result, FromCache: false}, nil
}

// Invalidate drops a cached page, forcing a re-fetch on the next request.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.cache, urlStr)
	f.mu.Unlock()
}
