// Package serp - filter.go screens search results down to pages that
// actually compete on article content.
package serp

import (
	"net/url"
	"strings"
)

// excludedDomains lists platforms whose results are not article competitors:
// social networks, video, marketplaces, and Q&A forums.
var excludedDomains = []string{
	"youtube.com",
	"facebook.com",
	"instagram.com",
	"tiktok.com",
	"twitter.com",
	"x.com",
	"pinterest.com",
	"linkedin.com",
	"reddit.com",
	"quora.com",
	"amazon.com",
	"ebay.com",
	"etsy.com",
	"wikipedia.org",
}

// IsExcluded checks if a URL is from a platform that should not be treated
// as a content competitor.
func IsExcluded(urlStr string) bool {
	domain := extractDomain(urlStr)
	if domain == "" {
		return true
	}
	for _, excluded := range excludedDomains {
		if domain == excluded || strings.HasSuffix(domain, "."+excluded) {
			return true
		}
	}
	return false
}

// extractDomain extracts the registrable host from a URL, with the www
// prefix stripped so subdomain variants of the same site dedupe together.
func extractDomain(urlStr string) string {
	if urlStr == "" {
		return ""
	}
	if !strings.Contains(urlStr, "://") {
		urlStr = "https://" + urlStr
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(parsed.Host, "www."))
}
